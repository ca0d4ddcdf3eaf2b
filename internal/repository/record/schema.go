package record

import (
	"strconv"

	"github.com/kailas-cloud/loksabha/internal/db"
	"github.com/kailas-cloud/loksabha/internal/domain/election"
)

// seqField is the storage-only insertion sequence used to replay source order.
const seqField = election.InternalKeyPrefix + "seq"

// tagSeparator never occurs in state, constituency, party or alliance names.
const tagSeparator = "|"

func (r *Repo) docPrefix() string { return r.prefix + "record:" }

func (r *Repo) docKey(seq int64) string { return r.docPrefix() + strconv.FormatInt(seq, 10) }

func (r *Repo) seqKey() string { return r.prefix + "records:seq" }

func (r *Repo) indexName() string { return r.prefix + "records:idx" }

// buildIndex declares the record index: every filter and group-by field is
// a sortable case-sensitive TAG so grouping keeps the stored spelling.
func buildIndex(name, docPrefix string) (*db.IndexDefinition, error) {
	return db.NewIndex(name).
		OnJSON().
		Prefix(docPrefix).
		Numeric("$."+election.KeyYear).As(election.FieldYear).Sortable().
		TagWithOpts(jsonPath(election.KeyStateName), tagSeparator, true).As(election.FieldState).Sortable().
		TagWithOpts(jsonPath(election.KeyPCName), tagSeparator, true).As(election.FieldPC).Sortable().
		TagWithOpts(jsonPath(election.KeyPartyName), tagSeparator, true).As(election.FieldParty).Sortable().
		TagWithOpts("$."+election.KeyAlliance, tagSeparator, true).As(election.FieldAlliance).Sortable().
		Numeric("$." + election.KeyIsWinner).As(election.FieldWinner).
		Numeric("$." + seqField).As(seqField).Sortable().
		Build()
}

// jsonPath quotes keys containing spaces: $["STATE NAME"].
func jsonPath(key string) string {
	return `$["` + key + `"]`
}
