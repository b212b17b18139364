package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// toMongo translates a store-agnostic query into a bson filter plus find
// options. Substring criteria become case-insensitive regex matches.
func (q *Query) toMongo() (bson.M, *options.FindOptions) {
	filter := bson.M{}
	for _, c := range q.Criteria {
		switch c.Op {
		case MatchSubstring:
			filter[c.Field] = primitive.Regex{Pattern: c.Value, Options: "i"}
		default:
			filter[c.Field] = c.Value
		}
	}

	opts := options.Find()
	if q.SortField != "" {
		dir := 1
		if q.SortDesc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.SortField, Value: dir}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	return filter, opts
}
