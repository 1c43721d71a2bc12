package main

import "github.com/killallgit/annotator-api/cmd"

// @title           Annotator API
// @version         1.0.0
// @description     A collaborative named-entity text annotation API with audit history and training export
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/annotator-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
