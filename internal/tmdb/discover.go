package tmdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// SortOrder is the application-level discover ordering.
type SortOrder string

const (
	SortRatingDesc SortOrder = "rating_desc"
	SortTitleAsc   SortOrder = "title_asc"
	SortTitleDesc  SortOrder = "title_desc"
	SortDateAsc    SortOrder = "date_asc"
	SortDateDesc   SortOrder = "date_desc"
)

// ParseSortOrder accepts the five known orders; "" is returned as is.
func ParseSortOrder(s string) (SortOrder, error) {
	o := SortOrder(s)
	switch o {
	case "", SortRatingDesc, SortTitleAsc, SortTitleDesc, SortDateAsc, SortDateDesc:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
}

// Filters configures a discover listing. Zero values and nil pointers mean
// "not set" and are left out of the request.
type Filters struct {
	// GenreIDs must all match (AND).
	GenreIDs      []int
	SortBy        SortOrder
	Year          *int
	MinRating     *float64
	OriginCountry string
	Page          int
}

func (f Filters) values(kind MediaKind) (url.Values, error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	v := url.Values{}

	if ids := uniqueIDs(f.GenreIDs); len(ids) > 0 {
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		v.Set("with_genres", strings.Join(parts, ","))
	}

	if f.SortBy != "" {
		sort, err := sortParam(kind, f.SortBy)
		if err != nil {
			return nil, err
		}
		v.Set("sort_by", sort)
	}

	if f.Year != nil {
		switch kind {
		case Movie:
			v.Set("primary_release_year", strconv.Itoa(*f.Year))
		case TV:
			v.Set("first_air_date_year", strconv.Itoa(*f.Year))
		}
	}

	if f.MinRating != nil {
		v.Set("vote_average.gte", strconv.FormatFloat(*f.MinRating, 'f', -1, 64))
	}

	if country := strings.TrimSpace(f.OriginCountry); country != "" {
		v.Set("with_origin_country", strings.ToUpper(country))
	}

	if f.Page != 0 {
		page, err := pageValue(f.Page)
		if err != nil {
			return nil, err
		}
		v.Set("page", page)
	}

	return v, nil
}

func sortParam(kind MediaKind, order SortOrder) (string, error) {
	title, date := "title", "primary_release_date"
	if kind == TV {
		title, date = "name", "first_air_date"
	}
	switch order {
	case SortRatingDesc:
		return "vote_average.desc", nil
	case SortTitleAsc:
		return title + ".asc", nil
	case SortTitleDesc:
		return title + ".desc", nil
	case SortDateAsc:
		return date + ".asc", nil
	case SortDateDesc:
		return date + ".desc", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, string(order))
	}
}

func uniqueIDs(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
