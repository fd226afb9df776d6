package extraction

// Record is one partially or fully extracted item: scalar fields by name plus
// ordered collections by name.
type Record struct {
	Fields map[string]string
	Lists  map[string][]string
}

func newRecord() Record {
	return Record{Fields: map[string]string{}, Lists: map[string][]string{}}
}

func (r Record) Get(field string) string {
	return r.Fields[field]
}

func (r Record) List(field string) []string {
	return r.Lists[field]
}

// Empty reports whether nothing was extracted.
func (r Record) Empty() bool {
	for _, v := range r.Fields {
		if v != "" {
			return false
		}
	}
	for _, l := range r.Lists {
		if len(l) > 0 {
			return false
		}
	}
	return true
}

func (r Record) clone() Record {
	out := newRecord()
	for k, v := range r.Fields {
		out.Fields[k] = v
	}
	for k, l := range r.Lists {
		out.Lists[k] = append([]string(nil), l...)
	}
	return out
}

func (r Record) appendLine(field, line string) {
	if existing := r.Fields[field]; existing != "" {
		r.Fields[field] = existing + "\n" + line
		return
	}
	r.Fields[field] = line
}

// addItem appends to a collection unless it is already at capacity.
// A capacity of zero means unbounded.
func (r Record) addItem(field, item string, capacity int) {
	if item == "" {
		return
	}
	if capacity > 0 && len(r.Lists[field]) >= capacity {
		return
	}
	r.Lists[field] = append(r.Lists[field], item)
}
