// Command blindauth runs the auth HTTP server.
package main

import (
	"blindauth/internal/app"
)

func main() {
	app.New().Run()
}
