package asrel

// Package asrel loads CAIDA's AS relationship database and provides easy
// access functions.
//
// Overview
//
// CAIDA publishes gzip-compressed, line-oriented snapshots describing
// pairwise relationships between Autonomous Systems: provider-customer and
// peer-peer links (no sibling links).  See:
//
//     http://data.caida.org/datasets/2013-asrank-data-supplement/
//
// The interesting parts live in two packages:
//
// 1. feed
//
// The line classifier.  Feed lines come in four shapes: source provenance
// headers, the inferred clique marker, the IXP ASes marker, and plain
// relationship records.  feed.Classify turns one decoded line into a tagged
// record or fails when the line matches no recognized grammar.  The feed is
// assumed authoritative, so any deviation is treated as a dataset version
// mismatch rather than something to paper over.
//
// The feed package also knows how to download snapshots from CAIDA's public
// dataset directory.
//
// 2. db
//
// The relationship table.  db.Load streams a snapshot through the classifier
// and folds the results into a DB.  Each relationship is stored once, in the
// direction the feed authored it; querying the opposite direction returns
// the sign-flipped code (P2C viewed backwards is C2P, and a peer link is its
// own mirror).  This keeps the table's size equal to the number of authored
// relationship lines while answering queries symmetrically.
//
// The asrel command under cmd/asrel exposes lookups, neighbor enumeration,
// feed statistics, and snapshot downloads.
