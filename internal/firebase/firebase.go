package firebase

import (
	"context"
	"log"

	firebaseSDK "firebase.google.com/go"
	"google.golang.org/api/option"

	"courseware/internal/config"
)

// App is a global variable to hold the initialized Firebase App object.
var App *firebaseSDK.App
var Context context.Context

// Initialize sets up the Firebase App using the configured service account
// credentials. Must be called after config.LoadConfig and before any
// repository is created.
func Initialize() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.Config.FirebaseCredentialsFile)
	app, err := firebaseSDK.NewApp(ctx, nil, opt)
	if err != nil {
		log.Panicf("error initializing Firebase app: %v\n", err)
	}

	App = app
	Context = ctx
}
