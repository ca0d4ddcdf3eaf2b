package mongo

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kailas-cloud/loksabha/internal/domain/filter"
)

// BuildFilter translates a filter expression into a BSON query document.
// keys maps field names to document keys; unmapped names are used as-is.
func BuildFilter(expr filter.Expression, keys map[string]string) bson.D {
	out := bson.D{}
	for _, cond := range expr.Must() {
		key := cond.Key()
		if k, ok := keys[key]; ok {
			key = k
		}
		switch {
		case cond.IsMatch():
			out = append(out, bson.E{Key: key, Value: cond.Match()})
		case cond.IsRange():
			out = append(out, bson.E{Key: key, Value: rangeValue(*cond.Range())})
		}
	}
	return out
}

// rangeValue renders a range. A point also matches its decimal string form,
// since imported collections store numbers like year either way.
func rangeValue(r filter.Range) any {
	if v, ok := r.Point(); ok {
		return bson.D{{Key: "$in", Value: bson.A{v, strconv.FormatFloat(v, 'f', -1, 64)}}}
	}
	ops := bson.D{}
	if r.GT() != nil {
		ops = append(ops, bson.E{Key: "$gt", Value: *r.GT()})
	}
	if r.GTE() != nil {
		ops = append(ops, bson.E{Key: "$gte", Value: *r.GTE()})
	}
	if r.LT() != nil {
		ops = append(ops, bson.E{Key: "$lt", Value: *r.LT()})
	}
	if r.LTE() != nil {
		ops = append(ops, bson.E{Key: "$lte", Value: *r.LTE()})
	}
	return ops
}
