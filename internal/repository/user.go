package repository

import (
	"fmt"
	"net/http"

	"courseware/internal/apperrors"
	"courseware/internal/config"
	"courseware/internal/firebase"
	"courseware/internal/models"

	"cloud.google.com/go/firestore"
	"github.com/mitchellh/mapstructure"

	firebaseAuth "firebase.google.com/go/auth"
)

func (fr *FirebaseRepository) initializeUserProfilesListener() {
	handleDocs := func(docs []*firestore.DocumentSnapshot) error {
		newProfiles := make(map[string]*models.Profile)
		for _, doc := range docs {
			if !doc.Exists() {
				continue
			}

			var profile models.Profile
			err := mapstructure.Decode(doc.Data(), &profile)
			if err != nil {
				return err
			}
			newProfiles[doc.Ref.ID] = &profile
		}

		fr.profilesLock.Lock()
		defer fr.profilesLock.Unlock()
		fr.profiles = newProfiles

		return nil
	}

	done := make(chan bool)
	query := fr.firestoreClient.Collection(models.FirestoreUserProfilesCollection).Query
	go func() {
		err := fr.createCollectionInitializer(query, &done, handleDocs)
		if err != nil {
			fmt.Printf("%v collection listener error: %v\n", models.FirestoreUserProfilesCollection, err)
		}
	}()
	<-done
}

// VerifySessionCookie verifies that the given session cookie is valid and
// returns the associated User if valid.
func (fr *FirebaseRepository) VerifySessionCookie(sessionCookie *http.Cookie) (*models.User, error) {
	decoded, err := fr.authClient.VerifySessionCookieAndCheckRevoked(firebase.Context, sessionCookie.Value)
	if err != nil {
		return nil, fmt.Errorf("error verifying cookie: %v\n", err)
	}

	user, err := fr.GetUserByID(decoded.UID)
	if err != nil {
		return nil, fmt.Errorf("error getting user from cookie: %v\n", err)
	}

	return user, nil
}

func (fr *FirebaseRepository) GetUserByID(id string) (*models.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	fbUser, err := fr.authClient.GetUser(firebase.Context, id)
	if err != nil {
		return nil, apperrors.UserNotFoundError
	}

	profile, err := fr.getUserProfile(fbUser.UID)
	if err != nil {
		// The profiles cache may lag a registration that just happened; fall
		// back to reading the document directly.
		doc, err := fr.firestoreClient.Collection(models.FirestoreUserProfilesCollection).Doc(fbUser.UID).Get(firebase.Context)
		if err != nil {
			return nil, apperrors.UserNotFoundError
		}

		var p models.Profile
		if err := mapstructure.Decode(doc.Data(), &p); err != nil {
			return nil, fmt.Errorf("error decoding user profile: %v\n", err)
		}
		profile = &p
	}

	return fbUserToUserRecord(fbUser, profile), nil
}

// CreateUser registers a Firebase Auth account and stores the accompanying
// profile document. The first registered user, and any address on the
// configured admin allowlist, becomes an admin.
func (fr *FirebaseRepository) CreateUser(req *models.CreateUserRequest) (*models.User, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Age:         req.Age,
		Profession:  req.Profession,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Institute:   req.Institute,
		Company:     req.Company,
		Position:    req.Position,
		IsAdmin:     fr.getUserCount() == 0 || contains(config.Config.AdminEmails, req.Email),
	}

	u := (&firebaseAuth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password).
		DisplayName(req.FirstName + " " + req.LastName)
	fbUser, err := fr.authClient.CreateUser(firebase.Context, u)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %v\n", err)
	}

	_, err = fr.firestoreClient.Collection(models.FirestoreUserProfilesCollection).Doc(fbUser.UID).Set(firebase.Context, map[string]interface{}{
		"firstName":   profile.FirstName,
		"lastName":    profile.LastName,
		"email":       profile.Email,
		"age":         profile.Age,
		"profession":  profile.Profession,
		"address":     profile.Address,
		"phoneNumber": profile.PhoneNumber,
		"institute":   profile.Institute,
		"company":     profile.Company,
		"position":    profile.Position,
		"isAdmin":     profile.IsAdmin,
		"id":          fbUser.UID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user profile: %v\n", err)
	}

	return fbUserToUserRecord(fbUser, profile), nil
}

func (fr *FirebaseRepository) DeleteUser(id string) error {
	// Delete account from Firebase Authentication.
	err := fr.authClient.DeleteUser(firebase.Context, id)
	if err != nil {
		return apperrors.DeleteUserError
	}

	// Delete the profile document.
	_, err = fr.firestoreClient.Collection(models.FirestoreUserProfilesCollection).Doc(id).Delete(firebase.Context)
	if err != nil {
		return apperrors.DeleteUserError
	}

	return nil
}

// Helpers

// fbUserToUserRecord combines a Firebase UserRecord and a Profile into a User.
func fbUserToUserRecord(fbUser *firebaseAuth.UserRecord, profile *models.Profile) *models.User {
	return &models.User{
		ID:                 fbUser.UID,
		Profile:            profile,
		Disabled:           fbUser.Disabled,
		CreationTimestamp:  fbUser.UserMetadata.CreationTimestamp,
		LastLogInTimestamp: fbUser.UserMetadata.LastLogInTimestamp,
	}
}

// getUserProfile gets the Profile from the cache corresponding to the
// provided user ID.
func (fr *FirebaseRepository) getUserProfile(id string) (*models.Profile, error) {
	fr.profilesLock.RLock()
	defer fr.profilesLock.RUnlock()

	if val, ok := fr.profiles[id]; ok {
		return val, nil
	}
	return nil, fmt.Errorf("no profile found for ID %v\n", id)
}

// getUserCount returns the number of user profiles.
func (fr *FirebaseRepository) getUserCount() int {
	fr.profilesLock.RLock()
	defer fr.profilesLock.RUnlock()

	return len(fr.profiles)
}

func contains(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}
	return false
}

func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("id must be a non-empty string")
	}
	if len(id) > 128 {
		return fmt.Errorf("id string must not be longer than 128 characters")
	}
	return nil
}
