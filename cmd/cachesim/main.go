// Command cachesim runs set-associative cache simulations from the command
// line.
package main

func main() {
	Execute()
}
