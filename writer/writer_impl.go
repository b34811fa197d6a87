package writer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/gridpdf/gridpdf/ir/raw"
	"github.com/gridpdf/gridpdf/ir/semantic"
)

type impl struct{}

func (w *impl) Write(ctx context.Context, doc *semantic.Document, out io.Writer, cfg Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("writer: nil document")
	}

	objects := make(map[raw.ObjectRef]raw.Object)
	objNum := 0
	nextRef := func() raw.ObjectRef {
		objNum++
		return raw.ObjectRef{Num: objNum}
	}

	catalogRef := nextRef()
	pagesRef := nextRef()

	// Fonts are deduplicated across pages by identity.
	fontRefs := make(map[*semantic.Font]raw.ObjectRef)
	fontRefFor := func(f *semantic.Font) (raw.ObjectRef, error) {
		if ref, ok := fontRefs[f]; ok {
			return ref, nil
		}
		ref, err := buildFont(f, nextRef, objects)
		if err != nil {
			return raw.ObjectRef{}, err
		}
		fontRefs[f] = ref
		return ref, nil
	}

	filter := pickContentFilter(cfg)
	pageRefs := make([]raw.ObjectRef, 0, len(doc.Pages))
	for _, p := range doc.Pages {
		var contentData []byte
		for _, cs := range p.Contents {
			contentData = append(contentData, serializeContentStream(cs)...)
		}
		encoded, filterName, err := applyFilter(contentData, filter, cfg)
		if err != nil {
			return fmt.Errorf("writer: encode content: %w", err)
		}
		contentRef := nextRef()
		streamDict := raw.Dict()
		streamDict.Set(raw.NameLiteral("Length"), raw.NumberInt(int64(len(encoded))))
		if filterName != "" {
			streamDict.Set(raw.NameLiteral("Filter"), raw.NameLiteral(filterName))
		}
		objects[contentRef] = raw.NewStream(streamDict, encoded)

		pageRef := nextRef()
		pageRefs = append(pageRefs, pageRef)
		pageDict := raw.Dict()
		pageDict.Set(raw.NameLiteral("Type"), raw.NameLiteral("Page"))
		pageDict.Set(raw.NameLiteral("Parent"), raw.Ref(pagesRef.Num, pagesRef.Gen))
		pageDict.Set(raw.NameLiteral("MediaBox"), rectArray(p.MediaBox))
		if p.Rotate != 0 {
			pageDict.Set(raw.NameLiteral("Rotate"), raw.NumberInt(int64(p.Rotate)))
		}
		resDict := raw.Dict()
		if p.Resources != nil && len(p.Resources.Fonts) > 0 {
			fontResDict := raw.Dict()
			names := make([]string, 0, len(p.Resources.Fonts))
			for name := range p.Resources.Fonts {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				ref, err := fontRefFor(p.Resources.Fonts[name])
				if err != nil {
					return err
				}
				fontResDict.Set(raw.NameLiteral(name), raw.Ref(ref.Num, ref.Gen))
			}
			resDict.Set(raw.NameLiteral("Font"), fontResDict)
		}
		pageDict.Set(raw.NameLiteral("Resources"), resDict)
		pageDict.Set(raw.NameLiteral("Contents"), raw.Ref(contentRef.Num, contentRef.Gen))
		objects[pageRef] = pageDict
	}

	kidsArr := raw.NewArray()
	for _, r := range pageRefs {
		kidsArr.Append(raw.Ref(r.Num, r.Gen))
	}
	pagesDict := raw.Dict()
	pagesDict.Set(raw.NameLiteral("Type"), raw.NameLiteral("Pages"))
	pagesDict.Set(raw.NameLiteral("Count"), raw.NumberInt(int64(len(pageRefs))))
	pagesDict.Set(raw.NameLiteral("Kids"), kidsArr)
	objects[pagesRef] = pagesDict

	catalogDict := raw.Dict()
	catalogDict.Set(raw.NameLiteral("Type"), raw.NameLiteral("Catalog"))
	catalogDict.Set(raw.NameLiteral("Pages"), raw.Ref(pagesRef.Num, pagesRef.Gen))
	objects[catalogRef] = catalogDict

	var infoRef *raw.ObjectRef
	if doc.Info != nil {
		ref := nextRef()
		objects[ref] = infoDict(doc.Info)
		infoRef = &ref
	}

	// Serialize: header, body, classic xref table, trailer.
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%%PDF-%s\n%%\xE2\xE3\xCF\xD3\n", pdfVersion(cfg))
	offsets := make(map[int]int64)
	ordered := make([]raw.ObjectRef, 0, len(objects))
	for ref := range objects {
		ordered = append(ordered, ref)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Num < ordered[j].Num })
	for _, ref := range ordered {
		offsets[ref.Num] = int64(buf.Len())
		buf.Write(serializeObject(ref, objects[ref]))
	}

	xrefOffset := buf.Len()
	maxObjNum := ordered[len(ordered)-1].Num
	fmt.Fprintf(&buf, "xref\n0 %d\n", maxObjNum+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= maxObjNum; i++ {
		if off, ok := offsets[i]; ok {
			fmt.Fprintf(&buf, "%010d 00000 n \n", off)
		} else {
			buf.WriteString("0000000000 65535 f \n")
		}
	}

	ids := fileID(doc, cfg)
	trailer := raw.Dict()
	trailer.Set(raw.NameLiteral("Size"), raw.NumberInt(int64(maxObjNum+1)))
	trailer.Set(raw.NameLiteral("Root"), raw.Ref(catalogRef.Num, catalogRef.Gen))
	if infoRef != nil {
		trailer.Set(raw.NameLiteral("Info"), raw.Ref(infoRef.Num, infoRef.Gen))
	}
	trailer.Set(raw.NameLiteral("ID"), raw.NewArray(raw.HexStr(ids[0]), raw.HexStr(ids[1])))
	buf.WriteString("trailer\n")
	buf.Write(serializePrimitive(trailer))
	fmt.Fprintf(&buf, "\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	_, err := out.Write(buf.Bytes())
	return err
}

func applyFilter(data []byte, filter ContentFilter, cfg Config) ([]byte, string, error) {
	switch filter {
	case FilterFlate:
		enc, err := flateEncode(data, cfg.Compression)
		return enc, "FlateDecode", err
	case FilterASCIIHex:
		return asciiHexEncode(data), "ASCIIHexDecode", nil
	default:
		return data, "", nil
	}
}

func serializeObject(ref raw.ObjectRef, obj raw.Object) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d %d obj\n", ref.Num, ref.Gen)
	buf.Write(serializePrimitive(obj))
	buf.WriteString("\nendobj\n")
	return buf.Bytes()
}

func infoDict(info *semantic.DocumentInfo) *raw.DictObj {
	d := raw.Dict()
	set := func(key, val string) {
		if val != "" {
			d.Set(raw.NameLiteral(key), raw.Str([]byte(val)))
		}
	}
	set("Title", info.Title)
	set("Author", info.Author)
	set("Subject", info.Subject)
	set("Creator", info.Creator)
	set("Producer", info.Producer)
	if len(info.Keywords) > 0 {
		d.Set(raw.NameLiteral("Keywords"), raw.Str([]byte(joinKeywords(info.Keywords))))
	}
	return d
}

func joinKeywords(kw []string) string {
	out := ""
	for i, k := range kw {
		if i > 0 {
			out += ", "
		}
		out += k
	}
	return out
}

// buildFont emits the object graph for a font resource and returns the ref
// of the top-level font dictionary.
func buildFont(font *semantic.Font, nextRef func() raw.ObjectRef, objects map[raw.ObjectRef]raw.Object) (raw.ObjectRef, error) {
	if font == nil {
		return raw.ObjectRef{}, fmt.Errorf("writer: nil font resource")
	}
	if font.Subtype == "Type0" {
		return buildCompositeFont(font, nextRef, objects)
	}
	ref := nextRef()
	d := raw.Dict()
	d.Set(raw.NameLiteral("Type"), raw.NameLiteral("Font"))
	subtype := font.Subtype
	if subtype == "" {
		subtype = "Type1"
	}
	d.Set(raw.NameLiteral("Subtype"), raw.NameLiteral(subtype))
	base := font.BaseFont
	if base == "" {
		base = "Helvetica"
	}
	d.Set(raw.NameLiteral("BaseFont"), raw.NameLiteral(base))
	if font.Encoding != "" {
		d.Set(raw.NameLiteral("Encoding"), raw.NameLiteral(font.Encoding))
	}
	if len(font.Widths) > 0 {
		first, last, arr := encodeWidths(font.Widths)
		d.Set(raw.NameLiteral("FirstChar"), raw.NumberInt(int64(first)))
		d.Set(raw.NameLiteral("LastChar"), raw.NumberInt(int64(last)))
		d.Set(raw.NameLiteral("Widths"), arr)
	}
	objects[ref] = d
	return ref, nil
}

func buildCompositeFont(font *semantic.Font, nextRef func() raw.ObjectRef, objects map[raw.ObjectRef]raw.Object) (raw.ObjectRef, error) {
	cid := font.DescendantFont
	if cid == nil {
		return raw.ObjectRef{}, fmt.Errorf("writer: composite font %q without descendant", font.BaseFont)
	}

	var descRef *raw.ObjectRef
	if desc := cid.Descriptor; desc != nil {
		ref := nextRef()
		d := raw.Dict()
		d.Set(raw.NameLiteral("Type"), raw.NameLiteral("FontDescriptor"))
		d.Set(raw.NameLiteral("FontName"), raw.NameLiteral(desc.FontName))
		d.Set(raw.NameLiteral("Flags"), raw.NumberInt(int64(desc.Flags)))
		d.Set(raw.NameLiteral("ItalicAngle"), raw.NumberFloat(desc.ItalicAngle))
		d.Set(raw.NameLiteral("Ascent"), raw.NumberFloat(desc.Ascent))
		d.Set(raw.NameLiteral("Descent"), raw.NumberFloat(desc.Descent))
		d.Set(raw.NameLiteral("CapHeight"), raw.NumberFloat(desc.CapHeight))
		d.Set(raw.NameLiteral("StemV"), raw.NumberFloat(desc.StemV))
		d.Set(raw.NameLiteral("FontBBox"), raw.NewArray(
			raw.NumberFloat(desc.FontBBox[0]),
			raw.NumberFloat(desc.FontBBox[1]),
			raw.NumberFloat(desc.FontBBox[2]),
			raw.NumberFloat(desc.FontBBox[3]),
		))
		if len(desc.FontFile) > 0 && desc.FontFileType == "FontFile2" {
			fileRef := nextRef()
			sd := raw.Dict()
			sd.Set(raw.NameLiteral("Length"), raw.NumberInt(int64(len(desc.FontFile))))
			sd.Set(raw.NameLiteral("Length1"), raw.NumberInt(int64(len(desc.FontFile))))
			objects[fileRef] = raw.NewStream(sd, desc.FontFile)
			d.Set(raw.NameLiteral("FontFile2"), raw.Ref(fileRef.Num, fileRef.Gen))
		}
		objects[ref] = d
		descRef = &ref
	}

	cidRef := nextRef()
	cd := raw.Dict()
	cd.Set(raw.NameLiteral("Type"), raw.NameLiteral("Font"))
	cd.Set(raw.NameLiteral("Subtype"), raw.NameLiteral(cid.Subtype))
	cd.Set(raw.NameLiteral("BaseFont"), raw.NameLiteral(cid.BaseFont))
	sys := raw.Dict()
	sys.Set(raw.NameLiteral("Registry"), raw.Str([]byte(cid.CIDSystemInfo.Registry)))
	sys.Set(raw.NameLiteral("Ordering"), raw.Str([]byte(cid.CIDSystemInfo.Ordering)))
	sys.Set(raw.NameLiteral("Supplement"), raw.NumberInt(int64(cid.CIDSystemInfo.Supplement)))
	cd.Set(raw.NameLiteral("CIDSystemInfo"), sys)
	cd.Set(raw.NameLiteral("DW"), raw.NumberInt(int64(cid.DW)))
	if len(cid.W) > 0 {
		cd.Set(raw.NameLiteral("W"), encodeCIDWidths(cid.W))
	}
	cd.Set(raw.NameLiteral("CIDToGIDMap"), raw.NameLiteral("Identity"))
	if descRef != nil {
		cd.Set(raw.NameLiteral("FontDescriptor"), raw.Ref(descRef.Num, descRef.Gen))
	}
	objects[cidRef] = cd

	var toUniRef *raw.ObjectRef
	if cmap := buildToUnicodeCMap(font); len(cmap) > 0 {
		ref := nextRef()
		sd := raw.Dict()
		sd.Set(raw.NameLiteral("Length"), raw.NumberInt(int64(len(cmap))))
		objects[ref] = raw.NewStream(sd, cmap)
		toUniRef = &ref
	}

	ref := nextRef()
	d := raw.Dict()
	d.Set(raw.NameLiteral("Type"), raw.NameLiteral("Font"))
	d.Set(raw.NameLiteral("Subtype"), raw.NameLiteral("Type0"))
	d.Set(raw.NameLiteral("BaseFont"), raw.NameLiteral(font.BaseFont))
	d.Set(raw.NameLiteral("Encoding"), raw.NameLiteral(font.Encoding))
	d.Set(raw.NameLiteral("DescendantFonts"), raw.NewArray(raw.Ref(cidRef.Num, cidRef.Gen)))
	if toUniRef != nil {
		d.Set(raw.NameLiteral("ToUnicode"), raw.Ref(toUniRef.Num, toUniRef.Gen))
	}
	objects[ref] = d
	return ref, nil
}
