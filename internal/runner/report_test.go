package runner

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestWriteReport(t *testing.T) {
	results := []DayResult{
		{
			Day:   1,
			Parse: 52100,
			Part1: PartResult{Answer: "11", Duration: 1042000, Status: StatusMatch},
			Part2: PartResult{Answer: "31", Duration: 2100500, Status: StatusMatch},
		},
		{
			Day:   9,
			Parse: 130042,
			Part1: PartResult{Answer: "1928", Duration: 3000000, Status: StatusNew},
			Part2: PartResult{Answer: "2858", Duration: 12345678, Status: StatusMismatch, Recorded: "2854"},
		},
		{
			Day:   13,
			Error: "read input for day 13: open input/day13.txt: no such file or directory",
		},
	}

	var buf bytes.Buffer
	WriteReport(&buf, results)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report", buf.Bytes())
}
