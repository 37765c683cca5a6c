package domain

import (
	"testing"
)

func TestRelationshipString(t *testing.T) {
	testCases := []struct {
		in  Relationship
		out string
	}{
		{
			in:  P2C,
			out: "P2C",
		},
		{
			in:  P2P,
			out: "P2P",
		},
		{
			in:  C2P,
			out: "C2P",
		},
		{
			in:  Relationship(5),
			out: "Relationship(5)",
		},
	}
	for i, testCase := range testCases {
		if expected, actual := testCase.out, testCase.in.String(); actual != expected {
			t.Errorf("[i=%v] Expected label=%v but actual=%v", i, expected, actual)
		}
	}
}

func TestRelationshipInverse(t *testing.T) {
	testCases := []struct {
		in  Relationship
		out Relationship
	}{
		{
			in:  P2C,
			out: C2P,
		},
		{
			in:  C2P,
			out: P2C,
		},
		{
			in:  P2P,
			out: P2P,
		},
	}
	for i, testCase := range testCases {
		if expected, actual := testCase.out, testCase.in.Inverse(); actual != expected {
			t.Errorf("[i=%v] Expected inverse=%v but actual=%v", i, expected, actual)
		}
		// Inverting twice must round-trip.
		if expected, actual := testCase.in, testCase.in.Inverse().Inverse(); actual != expected {
			t.Errorf("[i=%v] Expected double inverse=%v but actual=%v", i, expected, actual)
		}
	}
}

func TestParseRelationship(t *testing.T) {
	testCases := []struct {
		in        int
		out       Relationship
		expectErr bool
	}{
		{
			in:  -1,
			out: P2C,
		},
		{
			in:  0,
			out: P2P,
		},
		{
			in:        1,
			expectErr: true,
		},
		{
			in:        2,
			expectErr: true,
		},
		{
			in:        -2,
			expectErr: true,
		},
	}
	for i, testCase := range testCases {
		rel, err := ParseRelationship(testCase.in)
		if testCase.expectErr {
			if err == nil {
				t.Errorf("[i=%v] Expected error for code=%v but got rel=%v", i, testCase.in, rel)
			}
			continue
		}
		if err != nil {
			t.Errorf("[i=%v] Unexpected error for code=%v: %s", i, testCase.in, err)
			continue
		}
		if expected, actual := testCase.out, rel; actual != expected {
			t.Errorf("[i=%v] Expected rel=%v but actual=%v", i, expected, actual)
		}
	}
}

func TestParseASN(t *testing.T) {
	testCases := []struct {
		in        string
		out       ASN
		expectErr bool
	}{
		{
			in:  "0",
			out: 0,
		},
		{
			in:  "1614",
			out: 1614,
		},
		{
			in:  "4200000000",
			out: 4200000000,
		},
		{
			in:        "-1",
			expectErr: true,
		},
		{
			in:        "as1",
			expectErr: true,
		},
		{
			in:        "",
			expectErr: true,
		},
	}
	for i, testCase := range testCases {
		asn, err := ParseASN(testCase.in)
		if testCase.expectErr {
			if err == nil {
				t.Errorf("[i=%v] Expected error for input=%q but got asn=%v", i, testCase.in, asn)
			}
			continue
		}
		if err != nil {
			t.Errorf("[i=%v] Unexpected error for input=%q: %s", i, testCase.in, err)
			continue
		}
		if expected, actual := testCase.out, asn; actual != expected {
			t.Errorf("[i=%v] Expected asn=%v but actual=%v", i, expected, actual)
		}
	}
}

func TestPairReversed(t *testing.T) {
	pair := Pair{From: 1, To: 2}
	if expected, actual := (Pair{From: 2, To: 1}), pair.Reversed(); actual != expected {
		t.Errorf("Expected reversed=%v but actual=%v", expected, actual)
	}
	if expected, actual := pair, pair.Reversed().Reversed(); actual != expected {
		t.Errorf("Expected double reverse=%v but actual=%v", expected, actual)
	}
}
