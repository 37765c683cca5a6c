package feed

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cunha/asrel/domain"
)

// Sentinel values the feed must carry in its source records.  A deviation
// signals a dataset version this package does not understand.
const (
	DTypeTopology = "topology"
	ProtoBGP      = "BGP"
)

// Kind tags the shape of a classified feed line.
type Kind int

const (
	KindComment Kind = iota
	KindSource
	KindClique
	KindIXPs
	KindRelationship
)

func (kind Kind) String() string {
	switch kind {
	case KindComment:
		return "comment"
	case KindSource:
		return "source"
	case KindClique:
		return "clique"
	case KindIXPs:
		return "ixps"
	case KindRelationship:
		return "relationship"
	}
	return "unknown"
}

// Line is a single classified feed line.  Payload fields are populated
// according to Kind: Source for KindSource, Members for KindClique and
// KindIXPs, Pair and Rel for KindRelationship.
type Line struct {
	Kind    Kind
	Source  *domain.DataSource
	Members []domain.ASN
	Pair    domain.Pair
	Rel     domain.Relationship
}

var (
	sourceExpr       = regexp.MustCompile(`^# source:(.*)$`)
	cliqueExpr       = regexp.MustCompile(`^# inferred clique: ([\d\s]+)$`)
	ixpsExpr         = regexp.MustCompile(`^# IXP ASes: ([\d\s]+)$`)
	relationshipExpr = regexp.MustCompile(`^(\d+)\|(\d+)\|(-?\d+)$`)
)

// Classify decides which of the recognized feed line shapes the trimmed line
// matches and extracts its payload.  Shapes are tried in a fixed order and
// the first match wins.  A line matching no shape must be a comment;
// otherwise the feed is malformed and classification fails.
func Classify(line string) (*Line, error) {
	if m := sourceExpr.FindStringSubmatch(line); m != nil {
		return classifySource(m[1])
	}
	if m := cliqueExpr.FindStringSubmatch(line); m != nil {
		members, err := parseASNList(m[1])
		if err != nil {
			return nil, errors.Wrap(err, "inferred clique line")
		}
		return &Line{Kind: KindClique, Members: members}, nil
	}
	if m := ixpsExpr.FindStringSubmatch(line); m != nil {
		members, err := parseASNList(m[1])
		if err != nil {
			return nil, errors.Wrap(err, "IXP ASes line")
		}
		return &Line{Kind: KindIXPs, Members: members}, nil
	}
	if m := relationshipExpr.FindStringSubmatch(line); m != nil {
		return classifyRelationship(m[1], m[2], m[3])
	}
	if strings.HasPrefix(line, "#") {
		return &Line{Kind: KindComment}, nil
	}
	return nil, errors.Errorf("unrecognized feed line %q", line)
}

func classifySource(payload string) (*Line, error) {
	fields := strings.Split(payload, "|")
	if len(fields) != 5 {
		return nil, errors.Errorf("source record has %v fields, expected 5: %q", len(fields), payload)
	}
	date, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, errors.Wrapf(err, "source record date %q", fields[2])
	}
	src := &domain.DataSource{
		DType:     fields[0],
		Proto:     fields[1],
		Date:      date,
		Feed:      fields[3],
		Collector: fields[4],
	}
	if src.DType != DTypeTopology {
		return nil, errors.Errorf("source record dtype=%q, expected %q", src.DType, DTypeTopology)
	}
	if src.Proto != ProtoBGP {
		return nil, errors.Errorf("source record proto=%q, expected %q", src.Proto, ProtoBGP)
	}
	if src.Date <= 0 {
		return nil, errors.Errorf("source record date=%v, expected a positive integer", src.Date)
	}
	return &Line{Kind: KindSource, Source: src}, nil
}

func classifyRelationship(as1 string, as2 string, code string) (*Line, error) {
	from, err := domain.ParseASN(as1)
	if err != nil {
		return nil, err
	}
	to, err := domain.ParseASN(as2)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return nil, errors.Wrapf(err, "relationship code %q", code)
	}
	rel, err := domain.ParseRelationship(n)
	if err != nil {
		return nil, err
	}
	line := &Line{
		Kind: KindRelationship,
		Pair: domain.Pair{From: from, To: to},
		Rel:  rel,
	}
	return line, nil
}

func parseASNList(payload string) ([]domain.ASN, error) {
	fields := strings.Fields(payload)
	members := make([]domain.ASN, 0, len(fields))
	for _, field := range fields {
		asn, err := domain.ParseASN(field)
		if err != nil {
			return nil, err
		}
		members = append(members, asn)
	}
	return members, nil
}
