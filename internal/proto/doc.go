// Package proto holds the FloodWatch wire definitions. The generated code
// (floodwatch.pb.go, floodwatch_grpc.pb.go) is produced by protoc and is not
// committed; run go generate after installing protoc-gen-go and
// protoc-gen-go-grpc.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative floodwatch.proto
