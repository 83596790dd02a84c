package pixgeom

import (
	"iter"

	"deedles.dev/xiter"
)

// vband returns the box restricted to rows lo..hi.
func vband(b Box2I, lo, hi int32) Box2I {
	if hi < lo {
		return Box2I{}
	}
	return NewBox2I(b.x, IntervalI{min: lo, size: hi - lo + 1})
}

func hband(b Box2I, lo, hi int32) Box2I {
	if hi < lo {
		return Box2I{}
	}
	return NewBox2I(IntervalI{min: lo, size: hi - lo + 1}, b.y)
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result is an even, vertical splitting of b into horizontal
// bands, top to bottom. The last band absorbs any remainder rows. In
// other words,
//
//	tiles := make([]pixgeom.Box2I, 3)
//	pixgeom.TileEvenVertically(tiles, b)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically(tiles []Box2I, b Box2I) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), b))
}

// TiledEvenVertically is the same as [TileEvenVertically] but yields
// the successive bands from an iterator instead of inserting them into
// a slice.
func TiledEvenVertically(numtiles int, b Box2I) iter.Seq[Box2I] {
	return func(yield func(Box2I) bool) {
		if numtiles <= 0 || b.IsEmpty() {
			return
		}
		step := b.y.size / int32(numtiles)
		lo := b.y.min
		for i := 0; i < numtiles; i++ {
			hi := lo + step - 1
			if i == numtiles-1 {
				hi = b.y.Max()
			}
			if !yield(vband(b, lo, hi)) {
				return
			}
			lo = hi + 1
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result is an even, horizontal splitting of b into vertical
// bands, left to right. The last band absorbs any remainder columns.
// In other words,
//
//	tiles := make([]pixgeom.Box2I, 3)
//	pixgeom.TileEvenHorizontally(tiles, b)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally(tiles []Box2I, b Box2I) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), b))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] but
// yields the successive bands from an iterator instead of inserting
// them into a slice.
func TiledEvenHorizontally(numtiles int, b Box2I) iter.Seq[Box2I] {
	return func(yield func(Box2I) bool) {
		if numtiles <= 0 || b.IsEmpty() {
			return
		}
		step := b.x.size / int32(numtiles)
		lo := b.x.min
		for i := 0; i < numtiles; i++ {
			hi := lo + step - 1
			if i == numtiles-1 {
				hi = b.x.Max()
			}
			if !yield(hband(b, lo, hi)) {
				return
			}
			lo = hi + 1
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces b. Each row
// is split evenly into at most cols tiles; when that number is
// exceeded, a new row is started below it instead.
func TileRows(tiles []Box2I, b Box2I, cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), b, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows(numtiles int, b Box2I, cols int) iter.Seq[Box2I] {
	return func(yield func(Box2I) bool) {
		if numtiles <= 0 || cols <= 0 {
			return
		}
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}

		remaining := numtiles
		for row := range TiledEvenVertically(numrows, b) {
			if remaining <= 0 {
				break
			}
			numcols := min(remaining, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			remaining -= numcols
		}
	}
}

func insertTilesFromSeq(tiles []Box2I, s iter.Seq[Box2I]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
