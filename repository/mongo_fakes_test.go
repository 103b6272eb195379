package repository

import (
	"context"
	"reflect"

	"github.com/bingelog/bingelog-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// In-memory stand-ins for the mongo wrapper interfaces. Documents round-trip
// through bson so the fakes exercise the same struct tags the driver would.

type fakeDatabase struct {
	collection *fakeCollection
}

func (d *fakeDatabase) Collection(string) mongo.Collection { return d.collection }
func (d *fakeDatabase) Client() mongo.Client               { return nil }

type fakeCollection struct {
	docs       []interface{}
	findErr    error
	findOneDoc interface{}

	// cursorErr surfaces from Cursor.Err after cursorFailAfter documents
	// have been served, mimicking a connection dropped mid-iteration.
	cursorErr       error
	cursorFailAfter int

	lastFilter   interface{}
	lastFindOpts []*options.FindOptions
	findCalls    int

	bulk       *fakeBulkWrite
	bulkResult fakeBulkResult
	bulkErr    error
}

func (c *fakeCollection) FindOne(ctx context.Context, filter interface{}) mongo.SingleResult {
	c.lastFilter = filter
	return &fakeSingleResult{doc: c.findOneDoc}
}

func (c *fakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (mongo.Cursor, error) {
	c.findCalls++
	c.lastFilter = filter
	c.lastFindOpts = opts
	if c.findErr != nil {
		return nil, c.findErr
	}
	return &fakeCursor{docs: c.docs, err: c.cursorErr, failAfter: c.cursorFailAfter}, nil
}

func (c *fakeCollection) Indexes() mongo.IndexView { return &fakeIndexView{} }

func (c *fakeCollection) BulkWrite() mongo.BulkWrite {
	c.bulk = &fakeBulkWrite{execErr: c.bulkErr, result: c.bulkResult}
	return c.bulk
}

type fakeSingleResult struct {
	doc interface{}
}

func (r *fakeSingleResult) Decode(v interface{}) error {
	if r.doc == nil {
		return driver.ErrNoDocuments
	}
	raw, err := bson.Marshal(r.doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, v)
}

type fakeCursor struct {
	docs []interface{}
	idx  int

	err       error
	failAfter int
}

func (c *fakeCursor) Close(context.Context) error { return nil }

func (c *fakeCursor) Next(context.Context) bool {
	if c.err != nil && c.idx >= c.failAfter {
		return false
	}
	if c.idx >= len(c.docs) {
		return false
	}
	c.idx++
	return true
}

func (c *fakeCursor) Decode(v interface{}) error {
	raw, err := bson.Marshal(c.docs[c.idx-1])
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, v)
}

func (c *fakeCursor) Err() error { return c.err }

func (c *fakeCursor) All(ctx context.Context, result interface{}) error {
	if c.err != nil {
		return c.err
	}
	slice := reflect.ValueOf(result).Elem()
	for _, doc := range c.docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		elem := reflect.New(slice.Type().Elem())
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

type fakeIndexView struct{}

func (fakeIndexView) CreateOne(context.Context, driver.IndexModel) (string, error) { return "", nil }

type fakeBulkWrite struct {
	models  []mongo.BulkModel
	execErr error
	result  fakeBulkResult
}

func (b *fakeBulkWrite) AddModel(models ...mongo.BulkModel) {
	b.models = append(b.models, models...)
}

func (b *fakeBulkWrite) Execute(context.Context) (mongo.BulkWriteResult, error) {
	if b.execErr != nil {
		return nil, b.execErr
	}
	return b.result, nil
}

type fakeBulkResult struct {
	matched  int64
	modified int64
	upserted int64
}

func (r fakeBulkResult) MatchedCount() int64  { return r.matched }
func (r fakeBulkResult) ModifiedCount() int64 { return r.modified }
func (r fakeBulkResult) UpsertedCount() int64 { return r.upserted }
