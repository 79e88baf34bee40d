package xlsxgen

import (
	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/opc"
	"github.com/benjaminschreck/go-xlsxgen/pkg/xlsxgen/xmlwriter"
)

// The theme part is a fixed rendition of the standard Office theme; the
// document model carries no theme state.

type themeColor struct {
	name    string
	element string // "a:sysClr" or "a:srgbClr"
	val     string
}

var themeColors = []themeColor{
	{"a:dk1", "a:sysClr", "windowText"},
	{"a:lt1", "a:sysClr", "window"},
	{"a:dk2", "a:srgbClr", "44546A"},
	{"a:lt2", "a:srgbClr", "E7E6E6"},
	{"a:accent1", "a:srgbClr", "5B9BD5"},
	{"a:accent2", "a:srgbClr", "ED7D31"},
	{"a:accent3", "a:srgbClr", "A5A5A5"},
	{"a:accent4", "a:srgbClr", "FFC000"},
	{"a:accent5", "a:srgbClr", "4472C4"},
	{"a:accent6", "a:srgbClr", "70AD47"},
	{"a:hlink", "a:srgbClr", "0563C1"},
	{"a:folHlink", "a:srgbClr", "954F72"},
}

// themeFont is one entry of the font scheme. Latin, East Asian, and
// complex-script slots use a named element; the rest are script-tagged
// a:font entries.
type themeFont struct {
	element string // non-empty for the named slots
	script  string
	major   string
	minor   string
}

var themeFonts = []themeFont{
	{element: "a:latin", major: "Calibri Light", minor: "Calibri"},
	{element: "a:ea"},
	{element: "a:cs"},
	{script: "Jpan", major: "Yu Gothic Light", minor: "Yu Gothic"},
	{script: "Hang", major: "맑은 고딕", minor: "맑은 고딕"},
	{script: "Hans", major: "DengXian Light", minor: "DengXian"},
	{script: "Hant", major: "新細明體", minor: "新細明體"},
	{script: "Arab", major: "Times New Roman", minor: "Arial"},
	{script: "Hebr", major: "Times New Roman", minor: "Arial"},
	{script: "Thai", major: "Tahoma", minor: "Tahoma"},
	{script: "Ethi", major: "Nyala", minor: "Nyala"},
	{script: "Beng", major: "Vrinda", minor: "Vrinda"},
	{script: "Gujr", major: "Shruti", minor: "Shruti"},
	{script: "Khmr", major: "MoolBoran", minor: "DaunPenh"},
	{script: "Knda", major: "Tunga", minor: "Tunga"},
	{script: "Guru", major: "Raavi", minor: "Raavi"},
	{script: "Cans", major: "Euphemia", minor: "Euphemia"},
	{script: "Cher", major: "Plantagenet Cherokee", minor: "Plantagenet Cherokee"},
	{script: "Yiii", major: "Microsoft Yi Baiti", minor: "Microsoft Yi Baiti"},
	{script: "Tibt", major: "Microsoft Himalaya", minor: "Microsoft Himalaya"},
	{script: "Thaa", major: "MV Boli", minor: "MV Boli"},
	{script: "Deva", major: "Mangal", minor: "Mangal"},
	{script: "Telu", major: "Gautami", minor: "Gautami"},
	{script: "Taml", major: "Latha", minor: "Latha"},
	{script: "Syrc", major: "Estrangelo Edessa", minor: "Estrangelo Edessa"},
	{script: "Orya", major: "Kalinga", minor: "Kalinga"},
	{script: "Mlym", major: "Kartika", minor: "Kartika"},
	{script: "Laoo", major: "DokChampa", minor: "DokChampa"},
	{script: "Sinh", major: "Iskoola Pota", minor: "Iskoola Pota"},
	{script: "Mong", major: "Mongolian Baiti", minor: "Mongolian Baiti"},
	{script: "Viet", major: "Times New Roman", minor: "Arial"},
	{script: "Uigh", major: "Microsoft Uighur", minor: "Microsoft Uighur"},
	{script: "Geor", major: "Sylfaen", minor: "Sylfaen"},
}

// renderTheme writes /xl/theme/theme1.xml.
func renderTheme(_ *Producer, _ *opc.Archive, c *cursor, _ opc.Relationship) error {
	x := c.xml

	x.StartElement("a:theme")
	x.NamespaceDecl(nsDrawingML, "a")
	x.Attr("name", "Office Theme")

	x.StartElement("a:themeElements")

	x.StartElement("a:clrScheme")
	x.Attr("name", "Office")
	for _, tc := range themeColors {
		x.StartElement(tc.name)
		x.StartElement(tc.element)
		x.Attr("val", tc.val)
		switch tc.name {
		case "a:dk1":
			x.Attr("lastClr", "000000")
		case "a:lt1":
			x.Attr("lastClr", "FFFFFF")
		}
		x.EndElement()
		x.EndElement()
	}
	x.EndElement()

	x.StartElement("a:fontScheme")
	x.Attr("name", "Office")
	writeThemeFontList(x, "a:majorFont", func(f themeFont) string { return f.major })
	writeThemeFontList(x, "a:minorFont", func(f themeFont) string { return f.minor })
	x.EndElement()

	writeThemeFormatScheme(x)

	x.EndElement() // a:themeElements

	x.StartElement("a:objectDefaults")
	x.EndElement()
	x.StartElement("a:extraClrSchemeLst")
	x.EndElement()

	x.StartElement("a:extLst")
	x.StartElement("a:ext")
	x.Attr("uri", "{05A4C25C-085E-4340-85A3-A5531E510DB2}")
	x.StartElement("thm15:themeFamily")
	x.NamespaceDecl(nsThm15, "thm15")
	x.Attr("name", "Office Theme")
	x.Attr("id", "{62F939B6-93AF-4DB8-9C6B-D6C7DFDC589F}")
	x.Attr("vid", "{4A3C46E8-61CC-4603-A589-7422A47A8E4A}")
	x.EndElement()
	x.EndElement()
	x.EndElement()

	x.EndElement()
	return nil
}

func writeThemeFontList(x *xmlwriter.Writer, name string, typeface func(themeFont) string) {
	x.StartElement(name)
	for _, f := range themeFonts {
		face := typeface(f)
		if f.element != "" {
			x.StartElement(f.element)
			x.Attr("typeface", face)
			switch face {
			case "Calibri Light":
				x.Attr("panose", "020F0302020204030204")
			case "Calibri":
				x.Attr("panose", "020F0502020204030204")
			}
			x.EndElement()
			continue
		}
		x.StartElement("a:font")
		x.Attr("script", f.script)
		x.Attr("typeface", face)
		x.EndElement()
	}
	x.EndElement()
}

// writeThemeFormatScheme emits the fill, line, effect, and background fill
// style lists of the Office format scheme.
func writeThemeFormatScheme(x *xmlwriter.Writer) {
	writeSchemeClr := func(mods ...[2]string) {
		x.StartElement("a:schemeClr")
		x.Attr("val", "phClr")
		for _, m := range mods {
			x.StartElement(m[0])
			x.Attr("val", m[1])
			x.EndElement()
		}
		x.EndElement()
	}
	writeGs := func(pos string, mods ...[2]string) {
		x.StartElement("a:gs")
		x.Attr("pos", pos)
		writeSchemeClr(mods...)
		x.EndElement()
	}
	writeLin := func() {
		x.StartElement("a:lin")
		x.Attr("ang", "5400000")
		x.Attr("scaled", "0")
		x.EndElement()
	}

	x.StartElement("a:fmtScheme")
	x.Attr("name", "Office")

	x.StartElement("a:fillStyleLst")

	x.StartElement("a:solidFill")
	writeSchemeClr()
	x.EndElement()

	x.StartElement("a:gradFill")
	x.Attr("rotWithShape", "1")
	x.StartElement("a:gsLst")
	writeGs("0", [2]string{"a:lumMod", "110000"}, [2]string{"a:satMod", "105000"}, [2]string{"a:tint", "67000"})
	writeGs("50000", [2]string{"a:lumMod", "105000"}, [2]string{"a:satMod", "103000"}, [2]string{"a:tint", "73000"})
	writeGs("100000", [2]string{"a:lumMod", "105000"}, [2]string{"a:satMod", "109000"}, [2]string{"a:tint", "81000"})
	x.EndElement()
	writeLin()
	x.EndElement()

	x.StartElement("a:gradFill")
	x.Attr("rotWithShape", "1")
	x.StartElement("a:gsLst")
	writeGs("0", [2]string{"a:satMod", "103000"}, [2]string{"a:lumMod", "102000"}, [2]string{"a:tint", "94000"})
	writeGs("50000", [2]string{"a:satMod", "110000"}, [2]string{"a:lumMod", "100000"}, [2]string{"a:shade", "100000"})
	writeGs("100000", [2]string{"a:lumMod", "99000"}, [2]string{"a:satMod", "120000"}, [2]string{"a:shade", "78000"})
	x.EndElement()
	writeLin()
	x.EndElement()

	x.EndElement() // a:fillStyleLst

	x.StartElement("a:lnStyleLst")
	for _, width := range []string{"6350", "12700", "19050"} {
		x.StartElement("a:ln")
		x.Attr("w", width)
		x.Attr("cap", "flat")
		x.Attr("cmpd", "sng")
		x.Attr("algn", "ctr")
		x.StartElement("a:solidFill")
		writeSchemeClr()
		x.EndElement()
		x.StartElement("a:prstDash")
		x.Attr("val", "solid")
		x.EndElement()
		x.StartElement("a:miter")
		x.Attr("lim", "800000")
		x.EndElement()
		x.EndElement()
	}
	x.EndElement()

	x.StartElement("a:effectStyleLst")
	for i := 0; i < 3; i++ {
		x.StartElement("a:effectStyle")
		x.StartElement("a:effectLst")
		if i == 2 {
			x.StartElement("a:outerShdw")
			x.Attr("blurRad", "57150")
			x.Attr("dist", "19050")
			x.Attr("dir", "5400000")
			x.Attr("algn", "ctr")
			x.Attr("rotWithShape", "0")
			x.StartElement("a:srgbClr")
			x.Attr("val", "000000")
			x.StartElement("a:alpha")
			x.Attr("val", "63000")
			x.EndElement()
			x.EndElement()
			x.EndElement()
		}
		x.EndElement()
		x.EndElement()
	}
	x.EndElement()

	x.StartElement("a:bgFillStyleLst")

	x.StartElement("a:solidFill")
	writeSchemeClr()
	x.EndElement()

	x.StartElement("a:solidFill")
	writeSchemeClr([2]string{"a:tint", "95000"}, [2]string{"a:satMod", "170000"})
	x.EndElement()

	x.StartElement("a:gradFill")
	x.Attr("rotWithShape", "1")
	x.StartElement("a:gsLst")
	writeGs("0", [2]string{"a:tint", "93000"}, [2]string{"a:satMod", "150000"}, [2]string{"a:shade", "98000"}, [2]string{"a:lumMod", "102000"})
	writeGs("50000", [2]string{"a:tint", "98000"}, [2]string{"a:satMod", "130000"}, [2]string{"a:shade", "90000"}, [2]string{"a:lumMod", "103000"})
	writeGs("100000", [2]string{"a:shade", "63000"}, [2]string{"a:satMod", "120000"})
	x.EndElement()
	writeLin()
	x.EndElement()

	x.EndElement() // a:bgFillStyleLst

	x.EndElement() // a:fmtScheme
}
