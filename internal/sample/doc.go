// Package sample holds enums generated from enums.yaml. It is checked in
// so the behaviour of generated code is covered by ordinary tests.
package sample

//go:generate go run github.com/syssam/strenum/cmd/strenum generate -f enums.yaml
