package event

// Source labels carried on merged records. An event present in several
// databases gets the combined label.
const (
	SourceSupportCard = "Support Card"
	SourceUmaData     = "Uma Data"
	SourceUraFinale   = "Ura Finale"
	SourceBoth        = "Both"
	SourceSupportUra  = "Support Card + Ura Finale"
	SourceUmaUra      = "Uma Data + Ura Finale"
	SourceAll         = "All Sources"
)

// Record is one event with its options, merged across databases.
type Record struct {
	Name    string
	Source  string
	Options map[string]string
}

// MergeSource combines two provenance labels into the canonical label
// for their union. The result only depends on which base databases are
// involved, not on the order they were seen.
func MergeSource(a, b string) string {
	set := map[string]bool{}
	addSources(set, a)
	addSources(set, b)
	sc, ud, uf := set[SourceSupportCard], set[SourceUmaData], set[SourceUraFinale]
	switch {
	case sc && ud && uf:
		return SourceAll
	case sc && ud:
		return SourceBoth
	case sc && uf:
		return SourceSupportUra
	case ud && uf:
		return SourceUmaUra
	case sc:
		return SourceSupportCard
	case ud:
		return SourceUmaData
	case uf:
		return SourceUraFinale
	}
	return a
}

func addSources(set map[string]bool, label string) {
	switch label {
	case SourceSupportCard, SourceUmaData, SourceUraFinale:
		set[label] = true
	case SourceBoth:
		set[SourceSupportCard] = true
		set[SourceUmaData] = true
	case SourceSupportUra:
		set[SourceSupportCard] = true
		set[SourceUraFinale] = true
	case SourceUmaUra:
		set[SourceUmaData] = true
		set[SourceUraFinale] = true
	case SourceAll:
		set[SourceSupportCard] = true
		set[SourceUmaData] = true
		set[SourceUraFinale] = true
	}
}

// mergeRecord folds one database row into the cache. Options from a
// later source only fill labels the record does not carry yet.
func mergeRecord(into map[string]*Record, name, source string, options map[string]string) {
	rec, ok := into[name]
	if !ok {
		rec = &Record{Name: name, Source: source, Options: map[string]string{}}
		into[name] = rec
	} else {
		rec.Source = MergeSource(rec.Source, source)
	}
	for label, reward := range options {
		if _, exists := rec.Options[label]; !exists {
			rec.Options[label] = reward
		}
	}
}
