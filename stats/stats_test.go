package stats

import (
	"reflect"
	"testing"
)

type post struct {
	id     int
	author string
}

func (p post) AuthorName() string { return p.author }

func byAuthors(names ...string) []post {
	out := make([]post, len(names))
	for i, n := range names {
		out[i] = post{id: i, author: n}
	}
	return out
}

func TestCountsByAuthor(t *testing.T) {
	got := CountsByAuthor(byAuthors("A", "A", ""))
	want := []AuthorStat{{Name: "A", Count: 2}, {Name: UnknownAuthor, Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountsByAuthor = %v, want %v", got, want)
	}
}

func TestCountsByAuthorFirstAppearanceOrder(t *testing.T) {
	got := CountsByAuthor(byAuthors("B", "A", "B", "C", "A", "B"))
	want := []AuthorStat{{Name: "B", Count: 3}, {Name: "A", Count: 2}, {Name: "C", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountsByAuthor = %v, want %v", got, want)
	}
}

func TestCountsByAuthorEmpty(t *testing.T) {
	if got := CountsByAuthor([]post(nil)); len(got) != 0 {
		t.Errorf("empty snapshot should yield no stats, got %v", got)
	}
}

func TestChartData(t *testing.T) {
	got := ChartData([]AuthorStat{{Name: "B", Count: 3}, {Name: UnknownAuthor, Count: 1}})
	want := []ChartPoint{{Name: "B", Posts: 3}, {Name: UnknownAuthor, Posts: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChartData = %v, want %v", got, want)
	}
}

func TestChartDataEmpty(t *testing.T) {
	if got := ChartData(nil); len(got) != 0 {
		t.Errorf("empty stats should yield an empty series, got %v", got)
	}
}

func TestPaginate(t *testing.T) {
	items := byAuthors("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")

	tests := []struct {
		name     string
		pageSize int
		page     int
		wantIDs  []int
	}{
		{"first page", 4, 1, []int{0, 1, 2, 3}},
		{"middle page", 4, 2, []int{4, 5, 6, 7}},
		{"short last page", 4, 3, []int{8, 9}},
		{"past the end", 4, 4, nil},
		{"zero page", 4, 0, nil},
		{"negative page", 4, -1, nil},
		{"whole collection", 10, 1, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.pageSize, tt.page)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].id != id {
					t.Errorf("item %d = id %d, want %d", i, got[i].id, id)
				}
			}
		})
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	if got := Paginate([]post(nil), 4, 1); len(got) != 0 {
		t.Errorf("empty collection should paginate to nothing, got %v", got)
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		n, pageSize, want int
	}{
		{10, 4, 3},
		{8, 4, 2},
		{1, 4, 1},
		{0, 4, 0},
		{4, 4, 1},
		{5, 4, 2},
	}
	for _, tt := range tests {
		if got := PageCount(tt.n, tt.pageSize); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.n, tt.pageSize, got, tt.want)
		}
	}
}
