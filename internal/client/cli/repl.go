package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/locagri/internal/client/router"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	flow() router.Flow
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Refresh(ctx context.Context) error
	Show(ctx context.Context, cin string) error
	Map(ctx context.Context, cin string) error
	Back(ctx context.Context) error
}

var flowCommands = map[router.Flow][]string{
	router.FlowLoading: {},
	router.FlowAuth:    {"login", "register"},
	router.FlowMain:    {"list", "search", "refresh", "show", "map", "back", "logout"},
}

func allowed(f router.Flow, cmd string) bool {
	for _, c := range flowCommands[f] {
		if c == cmd {
			return true
		}
	}
	return false
}

// runREPL reads commands line by line from reader and dispatches them to a.
// Commands outside the current flow are refused. The loop ends on EOF or
// "exit"/"quit". Handlers report their own errors to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("locagri> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			cmds := append(append([]string{}, flowCommands[a.flow()]...), "help", "exit")
			printlnFn("Available commands:", strings.Join(cmds, ", "))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !allowed(a.flow(), cmd) {
			printlnFn("Unknown command:", cmd)
			continue
		}

		switch cmd {
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "list":
			_ = a.List(ctx)
		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <text>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))
		case "refresh":
			_ = a.Refresh(ctx)
		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <cin>")
				continue
			}
			_ = a.Show(ctx, args[0])
		case "map":
			cin := ""
			if len(args) > 0 {
				cin = args[0]
			}
			_ = a.Map(ctx, cin)
		case "back":
			_ = a.Back(ctx)
		}
	}
}
