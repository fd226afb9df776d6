package extraction

import "strings"

// Extract parses one block into a record using the profile's field rules.
// Lines no rule recognises are dropped unless a multi-line field is open, in
// which case they extend that field. A targeted collection only takes lines
// while its header is the last label seen.
func Extract(block Block, p *KindProfile) Record {
	rec := newRecord()
	open := ""
	target := ""

	for _, raw := range strings.Split(block.Text, "\n") {
		line := cleanLine(raw)
		if line == "" {
			continue
		}

		rule, value, ok := p.match(line)
		if ok && rule.Mode == ModeCollection && rule.Targeted && target != rule.Field {
			ok = false
		}
		if !ok {
			if open != "" {
				rec.appendLine(open, strings.TrimRight(raw, " \t\r"))
			}
			continue
		}

		switch rule.Mode {
		case ModeScalar:
			open, target = "", ""
			if value != "" && rec.Fields[rule.Field] == "" {
				rec.Fields[rule.Field] = value
			}
		case ModeMultiLine:
			open, target = rule.Field, ""
			if value != "" {
				rec.appendLine(rule.Field, value)
			}
		case ModeHeader:
			open, target = "", rule.Field
			rec.addItem(rule.Field, value, p.capacity(rule.Field))
		case ModeCollection:
			open = ""
			rec.addItem(rule.Field, value, p.capacity(rule.Field))
		}
	}
	return rec
}

// ExtractAll runs Extract over every block, keeping block order.
func ExtractAll(blocks []Block, p *KindProfile) []Record {
	records := make([]Record, 0, len(blocks))
	for _, b := range blocks {
		records = append(records, Extract(b, p))
	}
	return records
}

// cleanLine trims a line and strips the markdown emphasis models like to add
// around labels.
func cleanLine(raw string) string {
	line := strings.TrimSpace(raw)
	line = strings.ReplaceAll(line, "**", "")
	line = strings.TrimLeft(line, "#> \t")
	return strings.TrimSpace(line)
}
