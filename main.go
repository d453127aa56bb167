package main

import (
	"courseware/internal/bunny"
	"courseware/internal/certification"
	"courseware/internal/config"
	"courseware/internal/firebase"
	"courseware/internal/mailer"
	"courseware/internal/repository"
	"courseware/internal/router"
	"courseware/internal/server"
)

func main() {
	config.LoadConfig()
	firebase.Initialize()
	repository.Initialize()

	var notifier certification.Notifier
	if config.Config.SendgridAPIKey != "" {
		notifier = mailer.NewSendgridNotifier(
			config.Config.SendgridAPIKey,
			config.Config.CertificateFromName,
			config.Config.CertificateFromEmail,
		)
	}

	var bunnyClient *bunny.Client
	if config.Config.BunnyLibraryID != "" {
		bunnyClient = bunny.NewClient(config.Config.BunnyLibraryID, config.Config.BunnyAPIKey)
	}

	certificationService := certification.NewService(repository.Repository, notifier)
	router.Initialize(certificationService, bunnyClient)

	server.Start()
}
