package main

import "github.com/yeqiyushi-eng/censys-openclaw/cmd"

func main() {
	cmd.Execute()
}
