/*
Copyright © 2026 The string-fns authors
*/
package main

import "github.com/emacsattic/string-fns/cmd"

func main() {
	cmd.Execute()
}
