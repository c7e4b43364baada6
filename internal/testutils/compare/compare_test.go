package compare_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-document-parser/internal/testutils/compare"
)

type CompareTestSuite struct {
	suite.Suite
}

func TestCompareSuite(t *testing.T) {
	suite.Run(t, new(CompareTestSuite))
}

func (s *CompareTestSuite) TestDecodeKeepsKeyOrder() {
	v, err := compare.Decode([]byte(`{"b": 1, "a": [true, null, "x"]}`))
	s.Require().NoError(err)

	s.Assert().Equal(compare.Object{
		{Key: "b", Value: json.Number("1")},
		{Key: "a", Value: []any{true, nil, "x"}},
	}, v)
}

func (s *CompareTestSuite) TestDecodeRejectsTrailingData() {
	_, err := compare.Decode([]byte(`{} {}`))
	s.Assert().Error(err)

	_, err = compare.Decode([]byte(`{"a": `))
	s.Assert().Error(err)
}

func (s *CompareTestSuite) TestJSON() {
	testCases := []struct {
		name     string
		left     string
		right    string
		expected *compare.Mismatch
	}{
		{
			name:  "identical",
			left:  `{"name": "Goblin", "hp": {"average": 7}}`,
			right: `{"name":"Goblin","hp":{"average":7}}`,
		},
		{
			name:     "nested value",
			left:     `{"hp": {"average": 7}}`,
			right:    `{"hp": {"average": 8}}`,
			expected: &compare.Mismatch{Path: "<root>.hp.average", Left: json.Number("7"), Right: json.Number("8")},
		},
		{
			name:     "array element",
			left:     `{"size": ["S", "M"]}`,
			right:    `{"size": ["S", "L"]}`,
			expected: &compare.Mismatch{Path: "<root>.size[1]", Left: "M", Right: "L"},
		},
		{
			name:     "left array longer",
			left:     `[1, 2, 3]`,
			right:    `[1, 2]`,
			expected: &compare.Mismatch{Path: "<root>[2]", Left: json.Number("3"), Right: compare.Absent{}},
		},
		{
			name:     "right array longer",
			left:     `[1]`,
			right:    `[1, "x"]`,
			expected: &compare.Mismatch{Path: "<root>[1]", Left: compare.Absent{}, Right: "x"},
		},
		{
			name:     "key order",
			left:     `{"a": 1, "b": 2}`,
			right:    `{"b": 2, "a": 1}`,
			expected: &compare.Mismatch{Path: "<root>.a", Left: json.Number("1"), Right: compare.Absent{}},
		},
		{
			name:     "extra key",
			left:     `{"a": 1}`,
			right:    `{"a": 1, "cr": "1/4"}`,
			expected: &compare.Mismatch{Path: "<root>.cr", Left: compare.Absent{}, Right: "1/4"},
		},
		{
			name:  "kind differs",
			left:  `{"fly": 60}`,
			right: `{"fly": {"number": 60}}`,
			expected: &compare.Mismatch{
				Path:  "<root>.fly",
				Left:  json.Number("60"),
				Right: compare.Object{{Key: "number", Value: json.Number("60")}},
			},
		},
		{
			name:     "number text differs",
			left:     `{"cost": 100}`,
			right:    `{"cost": 1e2}`,
			expected: &compare.Mismatch{Path: "<root>.cost", Left: json.Number("100"), Right: json.Number("1e2")},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			actual, err := compare.JSON([]byte(tc.left), []byte(tc.right))
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, actual)
		})
	}
}

func (s *CompareTestSuite) TestMismatchString() {
	m := &compare.Mismatch{Path: "<root>[0]", Left: "a", Right: compare.Absent{}}
	s.Assert().Equal("<root>[0]: a != <absent>", m.String())
}
