//go:build tools

// Package tools pins code generation dependencies.
package tools

import (
	_ "github.com/gagliardetto/anchor-go"
)
