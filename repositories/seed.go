package repositories

import (
	"fmt"
	"forum-lab/domain"
	"forum-lab/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// The writes below belong to other parts of the forum (sign up, community
// creation, posting, bans). They are kept here to seed a node and for tests.

func (r *ForumRepository) CreatePerson(person domain.Person) error {
	return r.create(personKey(person.ID), fromPerson(person))
}

func (r *ForumRepository) CreateCommunity(community domain.Community) error {
	return r.create(communityKey(community.ID), fromCommunity(community))
}

func (r *ForumRepository) CreatePost(post domain.Post) error {
	if post.Published.IsZero() {
		post.Published = r.now().UTC()
	}
	return r.create(postKey(post.ID), fromPost(post))
}

// SaveCommunity overwrites a community, used to delete or remove it.
func (r *ForumRepository) SaveCommunity(community domain.Community) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return set(txn, communityKey(community.ID), fromCommunity(community))
	})
}

func (r *ForumRepository) AddModerator(communityID domain.CommunityID, personID domain.PersonID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(moderatorKey(communityID, personID), nil)
	})
}

// BanFromCommunity bans a person, until expires when it is set.
func (r *ForumRepository) BanFromCommunity(communityID domain.CommunityID, personID domain.PersonID,
	expires *time.Time) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return set(txn, banKey(communityID, personID), diskBan{Expires: expires})
	})
}

func (r *ForumRepository) create(key []byte, value any) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("%s: %w", key, errors.ErrAlreadyExists)
		}
		return set(txn, key, value)
	})
}

// SeedDemo fills an empty node with a small forum to play with. Running it
// again on a seeded node changes nothing.
func (r *ForumRepository) SeedDemo() ([]domain.Person, error) {
	persons := []domain.Person{
		{ID: 1, LocalUserID: 1, Name: "admin", Admin: true},
		{ID: 2, LocalUserID: 2, Name: "moderator"},
		{ID: 3, LocalUserID: 3, Name: "alice"},
		{ID: 4, LocalUserID: 4, Name: "troll"},
	}
	communities := []domain.Community{
		{ID: 1, Name: "golang"},
		{ID: 2, Name: "archive", Removed: true},
	}
	posts := []domain.Post{
		{ID: 1, CommunityID: 1, CreatorID: 3, Name: "Generic type aliases are here"},
		{ID: 2, CommunityID: 1, CreatorID: 4, Name: "Rust is better"},
		{ID: 3, CommunityID: 2, CreatorID: 3, Name: "Old announcement"},
	}

	var err error
	for _, person := range persons {
		err = ignoreExisting(err, r.CreatePerson(person))
	}
	for _, community := range communities {
		err = ignoreExisting(err, r.CreateCommunity(community))
	}
	for _, post := range posts {
		err = ignoreExisting(err, r.CreatePost(post))
	}
	if err != nil {
		return nil, err
	}
	if err := r.AddModerator(1, 2); err != nil {
		return nil, err
	}
	if err := r.AddModerator(2, 2); err != nil {
		return nil, err
	}
	if err := r.BanFromCommunity(1, 4, nil); err != nil {
		return nil, err
	}
	r.log.Info("Demo forum seeded", "persons", len(persons), "communities", len(communities), "posts", len(posts))
	return persons, nil
}

func ignoreExisting(previous, err error) error {
	if previous != nil {
		return previous
	}
	if errors.Is(err, errors.ErrAlreadyExists) {
		return nil
	}
	return err
}
