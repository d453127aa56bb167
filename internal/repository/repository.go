package repository

import (
	"fmt"
	"log"
	"sync"

	"courseware/internal/firebase"
	"courseware/internal/models"

	firebaseAuth "firebase.google.com/go/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cloud.google.com/go/firestore"
)

var Repository *FirebaseRepository

// Initialize creates the global repository. Must be called after
// firebase.Initialize.
func Initialize() {
	var err error
	Repository, err = NewFirebaseRepository()
	if err != nil {
		log.Panicf("Error creating repository: %v\n", err)
	}

	log.Printf("✅ Successfully created Firebase repository client")
}

type FirebaseRepository struct {
	authClient      *firebaseAuth.Client
	firestoreClient *firestore.Client

	coursesLock *sync.RWMutex
	courses     map[string]*models.Course

	profilesLock *sync.RWMutex
	profiles     map[string]*models.Profile
}

func NewFirebaseRepository() (*FirebaseRepository, error) {
	fr := &FirebaseRepository{
		coursesLock: &sync.RWMutex{},
		courses:     make(map[string]*models.Course),

		profilesLock: &sync.RWMutex{},
		profiles:     make(map[string]*models.Profile),
	}

	authClient, err := firebase.App.Auth(firebase.Context)
	if err != nil {
		return nil, fmt.Errorf("Auth client error: %v\n", err)
	}
	fr.authClient = authClient

	firestoreClient, err := firebase.App.Firestore(firebase.Context)
	if err != nil {
		return nil, fmt.Errorf("Firestore client error: %v\n", err)
	}
	fr.firestoreClient = firestoreClient

	// Execute the listeners sequentially, in case later listeners need to
	// utilize data fetched by previous listeners.
	initFns := []func(){fr.initializeUserProfilesListener, fr.initializeCoursesListener}
	for _, initFn := range initFns {
		initFn()
	}

	return fr, nil
}

// createCollectionInitializer attaches a snapshot listener to a collection
// query and feeds every consistent snapshot to handleDocs. The done channel
// is signalled once, after the first snapshot has been applied, so callers
// can block until their in-memory cache is warm.
func (fr *FirebaseRepository) createCollectionInitializer(
	query firestore.Query, done *chan bool,
	handleDocs func(docs []*firestore.DocumentSnapshot) error,
) error {
	var doOnce sync.Once
	it := query.Snapshots(firebase.Context)

	for {
		snap, err := it.Next()
		// DeadlineExceeded will be returned when ctx is cancelled.
		if status.Code(err) == codes.DeadlineExceeded || status.Code(err) == codes.Canceled {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Snapshots.Next: %v", err)
		}
		if snap == nil {
			continue
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			return fmt.Errorf("Documents.GetAll: %v", err)
		}
		if err := handleDocs(docs); err != nil {
			return err
		}

		doOnce.Do(func() {
			*done <- true
		})
	}
}
