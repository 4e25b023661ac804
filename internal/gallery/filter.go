package gallery

// FilterAll is the sentinel that selects every photo.
const FilterAll = "all"

// FilterByFolder narrows a fetched photo list to one folder. It is a pure
// predicate over the slice: "all" (or empty) returns the input unchanged and
// order is always preserved.
func FilterByFolder(photos []PhotoView, folderID string) []PhotoView {
	if folderID == "" || folderID == FilterAll {
		return photos
	}
	filtered := make([]PhotoView, 0, len(photos))
	for _, p := range photos {
		if p.FolderID == folderID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
