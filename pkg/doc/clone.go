package doc

// Clone returns a deep copy of ins. Appending to the copy never touches the
// backing array or child slices of the original.
func (ins Inlines) Clone() Inlines {
	if ins == nil {
		return nil
	}
	out := make(Inlines, len(ins))
	for i, in := range ins {
		out[i] = cloneInline(in)
	}
	return out
}

// Clone returns a deep copy of bs.
func (bs Blocks) Clone() Blocks {
	if bs == nil {
		return nil
	}
	out := make(Blocks, len(bs))
	for i, b := range bs {
		out[i] = cloneBlock(b)
	}
	return out
}

func cloneInline(in Inline) Inline {
	switch n := in.(type) {
	case Emph:
		return Emph{Content: n.Content.Clone()}
	case Strong:
		return Strong{Content: n.Content.Clone()}
	case Strikeout:
		return Strikeout{Content: n.Content.Clone()}
	case Link:
		return Link{Content: n.Content.Clone(), URL: n.URL, Title: n.Title}
	case Image:
		return Image{Alt: n.Alt.Clone(), URL: n.URL, Title: n.Title}
	case Span:
		return Span{Attr: n.Attr.clone(), Content: n.Content.Clone()}
	case Note:
		return Note{Content: n.Content.Clone()}
	}
	// leaf nodes are immutable values
	return in
}

func cloneItems(items []Blocks) []Blocks {
	if items == nil {
		return nil
	}
	out := make([]Blocks, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

func cloneBlock(b Block) Block {
	switch n := b.(type) {
	case Plain:
		return Plain{Content: n.Content.Clone()}
	case Para:
		return Para{Content: n.Content.Clone()}
	case Header:
		return Header{Level: n.Level, Attr: n.Attr.clone(), Content: n.Content.Clone()}
	case BlockQuote:
		return BlockQuote{Content: n.Content.Clone()}
	case BulletList:
		return BulletList{Items: cloneItems(n.Items)}
	case OrderedList:
		return OrderedList{Start: n.Start, Items: cloneItems(n.Items)}
	case DefinitionList:
		items := make([]DefinitionItem, len(n.Items))
		for i, it := range n.Items {
			items[i] = DefinitionItem{Term: it.Term.Clone(), Definitions: cloneItems(it.Definitions)}
		}
		return DefinitionList{Items: items}
	case Div:
		return Div{Attr: n.Attr.clone(), Content: n.Content.Clone()}
	}
	return b
}
