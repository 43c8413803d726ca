package main

import "payroll_system/cmd"

func main() {
	cmd.Execute()
}
