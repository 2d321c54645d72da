package repositories

import (
	"context"
	"fmt"
	"forum-lab/contract"
	"forum-lab/domain"
	"forum-lab/errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	defaultModlogLimit = 20
	// Seek key for a reverse scan, above any 19 digits timestamp.
	newestSeekSuffix = "9999999999999999999"
)

// ForumRepository is the badger-backed state store of posts, communities,
// persons, moderator/ban relations and the moderation log.
//
// Keys:
//   - person:{id}, community:{id}, post:{id}
//   - community_moderator:{community}:{person}
//   - community_ban:{community}:{person}
//   - modlog:{unix_nano_padded}:{uuid}
//   - idx:modlog_post:{post}:{unix_nano_padded}:{uuid} -> modlog key
type ForumRepository struct {
	db          *badger.DB
	log         *slog.Logger
	modlogLimit int
	now         func() time.Time
}

func NewForumRepository(db *badger.DB, log *slog.Logger, modlogLimit int) *ForumRepository {
	if modlogLimit <= 0 {
		modlogLimit = defaultModlogLimit
	}
	return &ForumRepository{db: db, log: log, modlogLimit: modlogLimit, now: time.Now}
}

func personKey(id domain.PersonID) []byte       { return []byte(fmt.Sprintf("person:%d", id)) }
func communityKey(id domain.CommunityID) []byte { return []byte(fmt.Sprintf("community:%d", id)) }
func postKey(id domain.PostID) []byte           { return []byte(fmt.Sprintf("post:%d", id)) }

func moderatorKey(communityID domain.CommunityID, personID domain.PersonID) []byte {
	return []byte(fmt.Sprintf("community_moderator:%d:%d", communityID, personID))
}

func banKey(communityID domain.CommunityID, personID domain.PersonID) []byte {
	return []byte(fmt.Sprintf("community_ban:%d:%d", communityID, personID))
}

// modlogSuffix is zero padded so that lexicographic order is chronological,
// the uuid breaks ties between records of the same nanosecond.
func modlogSuffix(record domain.AuditRecord) string {
	return fmt.Sprintf("%019d:%s", record.At.UnixNano(), record.ID)
}

const modlogPrefix = "modlog:"

func modlogPostPrefix(id domain.PostID) string {
	return fmt.Sprintf("idx:modlog_post:%d:", id)
}

func (r *ForumRepository) ReadPost(ctx context.Context, id domain.PostID) (domain.Post, error) {
	var post diskPost
	if err := r.read(ctx, postKey(id), &post); err != nil {
		return domain.Post{}, err
	}
	return post.toDomain(), nil
}

func (r *ForumRepository) ReadCommunity(ctx context.Context, id domain.CommunityID) (domain.Community, error) {
	var community diskCommunity
	if err := r.read(ctx, communityKey(id), &community); err != nil {
		return domain.Community{}, err
	}
	return community.toDomain(), nil
}

func (r *ForumRepository) ReadPerson(ctx context.Context, id domain.PersonID) (domain.Person, error) {
	var person diskPerson
	if err := r.read(ctx, personKey(id), &person); err != nil {
		return domain.Person{}, err
	}
	return person.toDomain(), nil
}

// IsBannedFromCommunity ignores bans whose expiry is in the past.
func (r *ForumRepository) IsBannedFromCommunity(ctx context.Context, personID domain.PersonID,
	communityID domain.CommunityID) (bool, error) {
	var ban diskBan
	err := r.read(ctx, banKey(communityID, personID), &ban)
	switch {
	case errors.Is(err, errors.ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	case ban.Expires != nil && !ban.Expires.After(r.now()):
		return false, nil
	default:
		return true, nil
	}
}

func (r *ForumRepository) IsModerator(ctx context.Context, personID domain.PersonID,
	communityID domain.CommunityID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var found bool
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(moderatorKey(communityID, personID))
		switch {
		case err == badger.ErrKeyNotFound:
			return nil
		case err != nil:
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// RunInTx runs fn in a single badger read-write transaction. Nothing fn
// wrote is visible unless it returns nil and the commit succeeds.
func (r *ForumRepository) RunInTx(ctx context.Context, fn func(tx contract.IStoreTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return fn(&forumTx{txn: txn})
	})
}

// ListAudit returns mod log records newest first. The returned cursor is
// nil once the log is exhausted.
func (r *ForumRepository) ListAudit(ctx context.Context, filter contract.AuditFilter) ([]domain.AuditRecord, *string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	limit := filter.Limit
	if limit <= 0 || limit > r.modlogLimit {
		limit = r.modlogLimit
	}

	prefixStr := modlogPrefix
	if filter.PostID != nil {
		prefixStr = modlogPostPrefix(*filter.PostID)
	}
	prefix := []byte(prefixStr)

	var (
		records []domain.AuditRecord
		lastKey string
		more    bool
	)
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append([]byte(prefixStr), newestSeekSuffix...)
		if filter.Cursor != nil {
			seekKey = append([]byte(prefixStr), *filter.Cursor...)
		}
		it.Seek(seekKey)
		if filter.Cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()[len(prefix):]) == *filter.Cursor {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if len(records) == limit {
				more = true
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])

			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if filter.PostID != nil {
				// Index entries point at the primary record.
				primary, err := txn.Get(value)
				if err != nil {
					return err
				}
				if value, err = primary.ValueCopy(nil); err != nil {
					return err
				}
			}
			var stored diskAudit
			if err := msgpack.Unmarshal(value, &stored); err != nil {
				return err
			}
			record, err := stored.toDomain()
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if !more {
		return records, nil, nil
	}
	r.log.Debug(fmt.Sprintf("Maximum of %d mod log records reached", limit))
	return records, &lastKey, nil
}

func (r *ForumRepository) read(ctx context.Context, key []byte, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.View(func(txn *badger.Txn) error {
		return get(txn, key, out)
	})
}

func get(txn *badger.Txn, key []byte, out any) error {
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return fmt.Errorf("%s: %w", key, errors.ErrNotFound)
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return msgpack.Unmarshal(val, out)
	})
}

func set(txn *badger.Txn, key []byte, value any) error {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return txn.Set(key, data)
}

// forumTx exposes the writes of one operation.
type forumTx struct {
	txn *badger.Txn
}

// UpdatePost applies form and stamps the post with at, the time of the operation.
func (t *forumTx) UpdatePost(id domain.PostID, form domain.PostUpdateForm, at time.Time) (domain.Post, error) {
	var post diskPost
	if err := get(t.txn, postKey(id), &post); err != nil {
		return domain.Post{}, err
	}
	updated := form.Apply(post.toDomain(), at.UTC())
	if err := set(t.txn, postKey(id), fromPost(updated)); err != nil {
		return domain.Post{}, err
	}
	return updated, nil
}

// AppendAudit writes the record and its per-post index entry.
func (t *forumTx) AppendAudit(record domain.AuditRecord) error {
	suffix := modlogSuffix(record)
	key := []byte(modlogPrefix + suffix)
	if _, err := t.txn.Get(key); err == nil {
		return fmt.Errorf("mod log %s: %w", suffix, errors.ErrAuditExists)
	}
	if err := set(t.txn, key, fromAuditRecord(record)); err != nil {
		return err
	}
	return t.txn.Set([]byte(modlogPostPrefix(record.PostID)+suffix), key)
}
