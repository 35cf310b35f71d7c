// cmd/biobase/main.go
package main

import "biobase/internal/cli"

func main() {
	cli.Execute()
}
