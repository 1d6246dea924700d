// Command adtctl inspects ADT dumps: it parses, renders, prints, counts
// and searches them.
package main

func main() {
	execute()
}
