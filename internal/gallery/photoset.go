package gallery

// MaxPhotos is the upper bound on photos a listing can carry.
const MaxPhotos = 5

// PhotoSet is an ordered list of photo references, never longer than MaxPhotos.
type PhotoSet []string

// NewPhotoSet builds a set from already persisted references, truncating anything past the cap.
func NewPhotoSet(refs []string) PhotoSet {
	return PhotoSet(nil).Append(refs)
}

// Append returns take(concat(s, batch), MaxPhotos). Duplicates are kept and
// references past the cap are dropped without notice.
func (s PhotoSet) Append(batch []string) PhotoSet {
	out := make(PhotoSet, 0, MaxPhotos)
	for _, ref := range s {
		if len(out) == MaxPhotos {
			return out
		}
		out = append(out, ref)
	}
	for _, ref := range batch {
		if len(out) == MaxPhotos {
			break
		}
		out = append(out, ref)
	}
	return out
}

// RemoveAt drops the reference at index i. An index outside the set leaves it unchanged.
func (s PhotoSet) RemoveAt(i int) PhotoSet {
	out := make(PhotoSet, 0, len(s))
	out = append(out, s...)
	if i < 0 || i >= len(s) {
		return out
	}
	return append(out[:i], out[i+1:]...)
}

func (s PhotoSet) Len() int {
	return len(s)
}

// Free reports how many more references the set can take.
func (s PhotoSet) Free() int {
	if len(s) >= MaxPhotos {
		return 0
	}
	return MaxPhotos - len(s)
}

func (s PhotoSet) Refs() []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
