package main

import "todo-store.com/todo-store/cmd"

func main() {
	cmd.Execute()
}
