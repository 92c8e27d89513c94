package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/godigest/internal/app"
)

// @title           GoDigest API
// @version         1.0
// @description     GoDigest computes salted and unsalted message digests over batches of strings.
// @contact.name    Contact Support
// @contact.url     https://godigest.dev/contact
// @contact.email   support@godigest.dev
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
