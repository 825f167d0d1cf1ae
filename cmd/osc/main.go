// Command osc encodes, decodes, sends and receives Open Sound Control packets.
package main

func main() {
	Execute()
}
