package sieve

// PerSymptomView lists the diagnoses of a single symptom in canonical
// category order. Unknown symptoms yield a view whose groups are all empty.
func PerSymptomView(kb *KnowledgeBase, sym Symptom) View {
	return View{
		Title:    string(sym),
		Symptoms: []Symptom{sym},
		Groups:   aggregate(kb, []Symptom{sym}),
	}
}

// CombinedView unions the diagnoses of every selected symptom per category,
// keeping the first occurrence of each label. An empty selection yields all
// six categories with empty lists.
func CombinedView(kb *KnowledgeBase, sel *Selection) View {
	symptoms := sel.Symptoms()
	title := ""
	if len(symptoms) > 0 {
		title = CombinedTitle(symptoms)
	}
	return View{
		Title:    title,
		Combined: true,
		Symptoms: symptoms,
		Groups:   aggregate(kb, symptoms),
	}
}

func aggregate(kb *KnowledgeBase, symptoms []Symptom) []Group {
	groups := make([]Group, len(categoryOrder))
	for i, cat := range categoryOrder {
		var lists [][]string
		if kb != nil {
			for _, sym := range symptoms {
				lists = append(lists, kb.Diagnoses(sym, cat))
			}
		}
		groups[i] = Group{Category: cat, Diagnoses: dedupe(lists...)}
	}
	return groups
}

// dedupe concatenates the lists and keeps the first occurrence of every
// non-empty label.
func dedupe(lists ...[]string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, label := range list {
			if label == "" {
				continue
			}
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	return out
}
