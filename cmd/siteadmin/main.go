package main

import "github.com/company-site-api/cmd/siteadmin/commands"

func main() {
	commands.Execute()
}
