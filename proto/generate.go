// Package proto holds the wire definitions. Generated Go lives under
// gen/proto and is not committed; run go generate ./proto to produce it.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative docpipe/v1/docpipe.proto
