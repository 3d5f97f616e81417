package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47`

func TestPart1(t *testing.T) {
	data, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "143", part1(data))
}

func TestPart2(t *testing.T) {
	data, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "123", part2(data))
}

func TestParseRejectsMissingDivider(t *testing.T) {
	_, err := parse("47-53\n\n47,53")
	assert.Error(t, err)
}
