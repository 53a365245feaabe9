package preview

import (
	"fmt"

	"github.com/Ning0612/fspreview/internal/domain"
	"github.com/Ning0612/fspreview/internal/format"
	"github.com/Ning0612/fspreview/internal/icon"
)

// ListingIconSize is the icon size of a listing row
const ListingIconSize = 16

// Row is a single entry of a folder listing
type Row struct {
	Icon icon.Type
	Name string
	// SizeLabel is empty for folders
	SizeLabel string
	Kind      domain.PathKind
}

// Listing is the view model of a folder
type Listing struct {
	Path   string
	Header Header
	Rows   []Row
}

// BuildListing creates the listing of the folder at path
func (b *Builder) BuildListing(path string, items []domain.PathItem) (*Listing, error) {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		itemIcon, err := b.icons.Resolve(item.Meta.Kind, ListingIconSize)
		if err != nil {
			return nil, fmt.Errorf("resolve icon for %s: %w", item.Path, err)
		}

		row := Row{
			Icon: itemIcon,
			Name: item.Name(),
			Kind: item.Meta.Kind,
		}
		if !item.Meta.IsFolder() {
			row.SizeLabel = format.HumanReadableFileSize(item.Meta.Size)
		}
		rows = append(rows, row)
	}

	return &Listing{
		Path: path,
		Header: Header{
			Title:     path,
			Desc:      fmt.Sprintf("%d items", len(rows)),
			MinHeight: b.theme.HeaderMinHeight,
		},
		Rows: rows,
	}, nil
}
