// Package proto holds the generated locagri.v1 RemoteStore messages and
// gRPC stubs shared by the server and the CLI.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative remote_store.proto
