package extraction

import "strings"

// Block is one delimited candidate record inside a raw reply.
type Block struct {
	Index int
	Text  string
}

// Segment splits reply into ordered blocks. It never fails: a reply without any
// recognisable delimiter yields zero blocks for the label strategy and at most
// one block for the fence strategy.
func Segment(reply string, d Delimiter) []Block {
	switch {
	case d.Label != nil:
		return segmentByLabel(reply, d)
	case d.Fence != "":
		return segmentByFence(reply, d.Fence)
	}
	if text := strings.TrimSpace(reply); text != "" {
		return []Block{{Index: 0, Text: text}}
	}
	return nil
}

func segmentByFence(reply, fence string) []Block {
	var blocks []Block
	for _, part := range strings.Split(reply, fence) {
		text := strings.TrimSpace(part)
		if text == "" {
			continue
		}
		blocks = append(blocks, Block{Index: len(blocks), Text: text})
	}
	return blocks
}

// segmentByLabel starts a new block at every label match. The label line stays
// with the block it opens and text before the first label is dropped.
func segmentByLabel(reply string, d Delimiter) []Block {
	locs := d.Label.FindAllStringIndex(reply, -1)
	blocks := make([]Block, 0, len(locs))
	for i, loc := range locs {
		end := len(reply)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		text := strings.TrimSpace(reply[loc[0]:end])
		if text == "" {
			continue
		}
		blocks = append(blocks, Block{Index: len(blocks), Text: text})
	}
	return blocks
}
