package main

import (
	"github.com/abhinav1singhal/social-dining/internal/app"
	"github.com/abhinav1singhal/social-dining/internal/config"
)

func main() {
	app.Go(config.Load())
}
