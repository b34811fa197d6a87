package fonts

// AFM-derived metrics for the built-in fonts, 1000-unit em. Widths cover the
// printable ASCII range 32..126.

const firstChar = 32

type afmMetrics struct {
	widths      [95]int
	bbox        [4]float64
	ascent      float64
	descent     float64
	capHeight   float64
	stemV       float64
	italicAngle float64
	flags       int
}

var standardMetrics = map[string]afmMetrics{
	"Helvetica": {
		widths: [95]int{
			278, 278, 355, 556, 556, 889, 667, 191, 333, 333,
			389, 584, 278, 333, 278, 278, 556, 556, 556, 556,
			556, 556, 556, 556, 556, 556, 278, 278, 584, 584,
			584, 556, 1015, 667, 667, 722, 722, 667, 611, 778,
			722, 278, 500, 667, 556, 833, 722, 778, 667, 778,
			722, 667, 611, 722, 667, 944, 667, 667, 611, 278,
			278, 278, 469, 556, 333, 556, 556, 500, 556, 556,
			278, 556, 556, 222, 222, 500, 222, 833, 556, 556,
			556, 556, 333, 500, 278, 556, 500, 722, 500, 500,
			500, 334, 260, 334, 584,
		},
		bbox:      [4]float64{-166, -225, 1000, 931},
		ascent:    718,
		descent:   -207,
		capHeight: 718,
		stemV:     88,
		flags:     32,
	},
	"Helvetica-Bold": {
		widths: [95]int{
			278, 333, 474, 556, 556, 889, 722, 238, 333, 333,
			389, 584, 278, 333, 278, 278, 556, 556, 556, 556,
			556, 556, 556, 556, 556, 556, 333, 333, 584, 584,
			584, 611, 975, 722, 722, 722, 722, 667, 611, 778,
			722, 278, 556, 722, 611, 833, 722, 778, 667, 778,
			722, 667, 611, 722, 667, 944, 667, 667, 611, 333,
			278, 333, 584, 556, 333, 556, 611, 556, 611, 556,
			333, 611, 611, 278, 278, 556, 278, 889, 611, 611,
			611, 611, 389, 556, 333, 611, 556, 778, 556, 556,
			500, 389, 280, 389, 584,
		},
		bbox:      [4]float64{-170, -228, 1003, 962},
		ascent:    718,
		descent:   -207,
		capHeight: 718,
		stemV:     140,
		flags:     32,
	},
	"Times-Roman": {
		widths: [95]int{
			250, 333, 408, 500, 500, 833, 778, 180, 333, 333,
			500, 564, 250, 333, 250, 278, 500, 500, 500, 500,
			500, 500, 500, 500, 500, 500, 278, 278, 564, 564,
			564, 444, 921, 722, 667, 667, 722, 611, 556, 722,
			722, 333, 389, 722, 611, 889, 722, 722, 556, 722,
			667, 556, 611, 722, 722, 944, 722, 722, 611, 333,
			278, 333, 469, 500, 333, 444, 500, 444, 500, 444,
			333, 500, 500, 278, 278, 500, 278, 778, 500, 500,
			500, 500, 333, 389, 278, 500, 500, 722, 500, 500,
			444, 480, 200, 480, 541,
		},
		bbox:      [4]float64{-168, -218, 1000, 898},
		ascent:    683,
		descent:   -217,
		capHeight: 662,
		stemV:     84,
		flags:     34,
	},
	"Courier": {
		widths: [95]int{
			600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
			600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
			600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
			600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
			600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
			600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
			600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
			600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
			600, 600, 600, 600, 600, 600, 600, 600, 600, 600,
			600, 600, 600, 600, 600,
		},
		bbox:      [4]float64{-23, -250, 715, 805},
		ascent:    629,
		descent:   -157,
		capHeight: 562,
		stemV:     51,
		flags:     33,
	},
}
