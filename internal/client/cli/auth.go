package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/locagri/internal/client/client"
	"github.com/dmitrijs2005/locagri/internal/client/router"
	"github.com/dmitrijs2005/locagri/internal/common"
)

// getSimpleText and getPassword are indirections swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const (
	msgFieldsRequired  = "All fields are required"
	msgPasswordsDiffer = "Passwords do not match"
	msgRegistered      = "Successfully registered! Please log in."
)

var errInvalidForm = errors.New("invalid registration form")

// Login prompts for credentials and signs in through the session machine.
// The store's error message is shown unchanged on failure.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.machine.Login(ctx, email, string(password))
	if err != nil {
		a.failure("%s", err.Error())
		return err
	}

	a.success("%s", msg)
	return nil
}

type registerForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// validate returns the message to show, or "" when the form is complete.
func (f registerForm) validate() string {
	for _, v := range []string{f.FirstName, f.LastName, f.Email, f.Password, f.ConfirmPassword} {
		if v == "" {
			return msgFieldsRequired
		}
	}
	if f.Password != f.ConfirmPassword {
		return msgPasswordsDiffer
	}
	return ""
}

// Register collects the registration form on the register screen and
// creates the account. The user stays signed out and is sent back to login.
func (a *App) Register(ctx context.Context) error {
	if _, err := a.router.Navigate(router.ScreenRegister); err != nil {
		return err
	}
	defer func() { _, _ = a.router.Navigate(router.ScreenLogin) }()

	var (
		f   registerForm
		err error
	)
	for _, field := range []struct {
		prompt string
		dst    *string
	}{
		{"First name", &f.FirstName},
		{"Last name", &f.LastName},
		{"Email", &f.Email},
	} {
		if *field.dst, err = getSimpleText(a.reader, field.prompt, a.out); err != nil {
			return err
		}
	}

	password, err := getPassword(a.out, "Password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.out, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	f.Password, f.ConfirmPassword = string(password), string(confirm)

	if msg := f.validate(); msg != "" {
		a.failure("%s", msg)
		return errInvalidForm
	}

	_, err = a.store.SignUp(ctx, client.SignUpInput{
		Email:     f.Email,
		Password:  f.Password,
		FirstName: f.FirstName,
		LastName:  f.LastName,
	})
	if err != nil {
		a.logger.Error(ctx, "error registering", "error", err)
		a.failure("Error registering: %s", err.Error())
		return err
	}

	a.success("%s", msgRegistered)
	return nil
}

// Logout signs out. On remote failure the session is kept.
func (a *App) Logout(ctx context.Context) error {
	if err := a.machine.Logout(ctx); err != nil {
		a.failure("Logout failed: %s", err.Error())
		return err
	}
	a.success("Logged out")
	return nil
}
