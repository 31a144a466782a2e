package jobs

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/upfleet/synckit/pkg/api"
)

var (
	// BoltDB bucket names
	bucketJobs = []byte("jobs")
)

// BoltQueue is a BoltDB-backed job queue. Jobs are keyed by a monotonic
// sequence number, so iteration order is enqueue order.
type BoltQueue struct {
	db *bbolt.DB
}

// NewBoltQueue opens (or creates) the queue database at dbPath
func NewBoltQueue(dbPath string) (*BoltQueue, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	queue := &BoltQueue{db: db}

	// Инициализируем bucket
	if err := queue.initBucket(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return queue, nil
}

// Close closes the database connection
func (q *BoltQueue) Close() error {
	if q.db == nil {
		return nil
	}
	return q.db.Close()
}

// initBucket создает bucket очереди если он не существует
func (q *BoltQueue) initBucket() error {
	return q.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketJobs); err != nil {
			return fmt.Errorf("failed to create jobs bucket: %w", err)
		}
		return nil
	})
}

// Enqueue appends a job to the queue
func (q *BoltQueue) Enqueue(ctx context.Context, job *api.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	err = q.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketJobs)

		// Монотонный ключ сохраняет порядок постановки
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}

		if err := bucket.Put(itob(seq), data); err != nil {
			return fmt.Errorf("failed to put job: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// Dequeue returns the oldest job without removing it.
// The job stays in the queue until Ack is called, so a crashed consumer
// sees it again on restart. Returns nil when the queue is empty.
func (q *BoltQueue) Dequeue(ctx context.Context) (*api.Job, error) {
	var job *api.Job

	err := q.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket(bucketJobs).Cursor()

		_, data := cursor.First()
		if data == nil {
			return nil
		}

		job = &api.Job{}
		if err := json.Unmarshal(data, job); err != nil {
			return fmt.Errorf("failed to unmarshal job: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return job, nil
}

// Ack removes a processed job from the queue.
// Returns ErrJobNotFound if no job with the given id is queued.
func (q *BoltQueue) Ack(ctx context.Context, jobID string) error {
	return q.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketJobs)
		cursor := bucket.Cursor()

		for key, data := cursor.First(); key != nil; key, data = cursor.Next() {
			var job api.Job
			if err := json.Unmarshal(data, &job); err != nil {
				return fmt.Errorf("failed to unmarshal job: %w", err)
			}

			if job.ID == jobID {
				if err := bucket.Delete(key); err != nil {
					return fmt.Errorf("failed to delete job: %w", err)
				}
				return nil
			}
		}

		return ErrJobNotFound
	})
}

// Pending returns the number of queued jobs
func (q *BoltQueue) Pending(ctx context.Context) (int, error) {
	var count int

	err := q.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket(bucketJobs).Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, err
	}

	return count, nil
}

// itob возвращает big-endian представление v для ключей bucket
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
