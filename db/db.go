package db

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/cunha/asrel/domain"
	"github.com/cunha/asrel/feed"
)

var (
	// ErrRelationshipNotFound is returned when the queried AS pair is absent
	// from the dataset in both directions.
	ErrRelationshipNotFound = errors.New("requested relationship not found")

	// MinRelationships is the post-load sanity threshold; a feed carrying
	// this many relationships or fewer is considered truncated.
	MinRelationships = 1000
)

// DB holds one loaded AS relationship dataset: the feed's self-described
// sources, the inferred clique, the IXP ASes, and the pair->relationship
// mapping.  A DB is populated once during Load and never mutated afterwards,
// so it is safe for unlocked concurrent readers.
type DB struct {
	sources map[domain.DataSource]struct{}
	clique  map[domain.ASN]struct{}
	ixps    map[domain.ASN]struct{}
	rels    map[domain.Pair]domain.Relationship
}

// Load reads a gzip-compressed AS relationship feed from path and constructs
// a DB from it.  Pass "-" to read the compressed stream from STDIN.  Load
// fails on any malformed line and on any post-load invariant violation; there
// is no partially loaded DB.
func Load(path string) (*DB, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrapf(err, "opening gzip stream %q", path)
	}
	defer gz.Close()
	db, err := LoadReader(gz)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %q", path)
	}
	return db, nil
}

// LoadReader constructs a DB from an already-decoded text stream.  Useful
// when decompression is handled elsewhere.
func LoadReader(r io.Reader) (*DB, error) {
	db := &DB{
		sources: map[domain.DataSource]struct{}{},
		clique:  map[domain.ASN]struct{}{},
		ixps:    map[domain.ASN]struct{}{},
		rels:    map[domain.Pair]domain.Relationship{},
	}

	var (
		scanner = bufio.NewScanner(r)
		n       = 0
	)
	// Marker lines list every clique/IXP member on a single line; give the
	// scanner room well past bufio's 64 KiB default.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		n++
		line, err := feed.Classify(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return nil, errors.Wrapf(err, "line %v", n)
		}
		db.apply(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading feed")
	}

	if err := db.validate(); err != nil {
		return nil, err
	}

	log.WithField("lines", n).WithField("relationships", len(db.rels)).Debug("Loaded AS relationship feed")
	return db, nil
}

func (db *DB) apply(line *feed.Line) {
	switch line.Kind {
	case feed.KindSource:
		db.sources[*line.Source] = struct{}{}
	case feed.KindClique:
		// A repeated marker line replaces the set wholesale.
		db.clique = asnSet(line.Members)
	case feed.KindIXPs:
		db.ixps = asnSet(line.Members)
	case feed.KindRelationship:
		db.rels[line.Pair] = line.Rel
	}
}

// validate enforces the post-load invariants.  Violations signal a truncated
// or empty feed.
func (db *DB) validate() error {
	if len(db.sources) == 0 {
		return errors.New("feed declares no sources")
	}
	if len(db.clique) == 0 {
		return errors.New("feed declares no inferred clique")
	}
	if len(db.ixps) == 0 {
		return errors.New("feed declares no IXP ASes")
	}
	if len(db.rels) <= MinRelationships {
		return errors.Errorf("feed carries %v relationships, expected more than %v", len(db.rels), MinRelationships)
	}
	for pair, rel := range db.rels {
		if rel != domain.P2C && rel != domain.P2P {
			return errors.Errorf("pair %v stored with relationship %v, expected P2C or P2P", pair, rel)
		}
	}
	return nil
}

// Relationship returns the relationship between from and to as seen from
// from's perspective.  The feed authors each relationship in one arbitrary
// direction; when only the reverse direction is stored, the inverse of the
// stored code is returned.  Returns ErrRelationshipNotFound when the pair is
// absent in both directions.
func (db *DB) Relationship(from domain.ASN, to domain.ASN) (domain.Relationship, error) {
	pair := domain.Pair{From: from, To: to}
	if rel, ok := db.rels[pair]; ok {
		return rel, nil
	}
	if rel, ok := db.rels[pair.Reversed()]; ok {
		return rel.Inverse(), nil
	}
	return domain.P2P, errors.Wrapf(ErrRelationshipNotFound, "pair %v", pair)
}

// RelationshipOr is the tolerant form of Relationship: it returns def when
// the pair is unknown and never fails.
func (db *DB) RelationshipOr(from domain.ASN, to domain.ASN, def domain.Relationship) domain.Relationship {
	rel, err := db.Relationship(from, to)
	if err != nil {
		return def
	}
	return rel
}

// Len returns the number of stored relationships.  Each relationship is
// stored once, in its authored direction.
func (db *DB) Len() int {
	return len(db.rels)
}

// InClique reports whether asn belongs to the feed's inferred clique.
func (db *DB) InClique(asn domain.ASN) bool {
	_, ok := db.clique[asn]
	return ok
}

// IsIXP reports whether asn represents an Internet exchange point.
func (db *DB) IsIXP(asn domain.ASN) bool {
	_, ok := db.ixps[asn]
	return ok
}

// Sources returns the feed's self-described data sources, ordered by date,
// feed, and collector.
func (db *DB) Sources() []domain.DataSource {
	sources := make([]domain.DataSource, 0, len(db.sources))
	for src := range db.sources {
		sources = append(sources, src)
	}
	sort.Slice(sources, func(i, j int) bool {
		if sources[i].Date != sources[j].Date {
			return sources[i].Date < sources[j].Date
		}
		if sources[i].Feed != sources[j].Feed {
			return sources[i].Feed < sources[j].Feed
		}
		return sources[i].Collector < sources[j].Collector
	})
	return sources
}

// Clique returns the inferred clique members in ascending order.
func (db *DB) Clique() []domain.ASN {
	return sortedASNs(db.clique)
}

// IXPs returns the IXP ASes in ascending order.
func (db *DB) IXPs() []domain.ASN {
	return sortedASNs(db.ixps)
}

// EachRelationship invokes fn on every stored pair, in its authored
// direction.  Iteration order is unspecified.
func (db *DB) EachRelationship(fn func(pair domain.Pair, rel domain.Relationship)) {
	for pair, rel := range db.rels {
		fn(pair, rel)
	}
}

// Providers returns the ASes that provide transit to asn, in ascending order.
func (db *DB) Providers(asn domain.ASN) []domain.ASN {
	return db.neighbors(asn, domain.C2P)
}

// Customers returns the ASes that buy transit from asn, in ascending order.
func (db *DB) Customers(asn domain.ASN) []domain.ASN {
	return db.neighbors(asn, domain.P2C)
}

// Peers returns the ASes that peer with asn, in ascending order.
func (db *DB) Peers(asn domain.ASN) []domain.ASN {
	return db.neighbors(asn, domain.P2P)
}

// neighbors collects every AS whose relationship with asn, as seen from
// asn's perspective, equals rel.
func (db *DB) neighbors(asn domain.ASN, rel domain.Relationship) []domain.ASN {
	var out []domain.ASN
	for pair, stored := range db.rels {
		switch asn {
		case pair.From:
			if stored == rel {
				out = append(out, pair.To)
			}
		case pair.To:
			if stored.Inverse() == rel {
				out = append(out, pair.From)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func asnSet(members []domain.ASN) map[domain.ASN]struct{} {
	set := make(map[domain.ASN]struct{}, len(members))
	for _, asn := range members {
		set[asn] = struct{}{}
	}
	return set
}

func sortedASNs(set map[domain.ASN]struct{}) []domain.ASN {
	asns := make([]domain.ASN, 0, len(set))
	for asn := range set {
		asns = append(asns, asn)
	}
	sort.Slice(asns, func(i, j int) bool { return asns[i] < asns[j] })
	return asns
}
