package domain_test

import (
	"reflect"
	"testing"

	"github.com/rubytopaz-glitch/universe/internal/domain"
)

func TestParseExclusions_TitleFragment(t *testing.T) {
	genres, titles := domain.ParseExclusions("체인소맨 빼고 추천해줘")
	if len(genres) != 0 {
		t.Errorf("unexpected genres: %v", genres)
	}
	if !reflect.DeepEqual(titles, []string{"체인소맨"}) {
		t.Errorf("unexpected titles: %v", titles)
	}
}

func TestParseExclusions_GenreName(t *testing.T) {
	genres, titles := domain.ParseExclusions("애니메이션은 제외해줘")
	if !reflect.DeepEqual(genres, []string{"애니메이션"}) {
		t.Errorf("unexpected genres: %v", genres)
	}
	if len(titles) != 0 {
		t.Errorf("unexpected titles: %v", titles)
	}
}

func TestParseExclusions_MultipleTermsWithSeparator(t *testing.T) {
	genres, titles := domain.ParseExclusions("체인소맨 그리고 드라큘라 빼고")
	if len(genres) != 0 {
		t.Errorf("unexpected genres: %v", genres)
	}
	if !reflect.DeepEqual(titles, []string{"체인소맨", "드라큘라"}) {
		t.Errorf("unexpected titles: %v", titles)
	}
}

func TestParseExclusions_MixedGenreAndTitle(t *testing.T) {
	genres, titles := domain.ParseExclusions("공포 빼고 체인소맨도 말고")
	if !reflect.DeepEqual(genres, []string{"공포"}) {
		t.Errorf("unexpected genres: %v", genres)
	}
	if !reflect.DeepEqual(titles, []string{"체인소맨도"}) {
		t.Errorf("unexpected titles: %v", titles)
	}
}

func TestParseExclusions_StripsMovieWord(t *testing.T) {
	genres, _ := domain.ParseExclusions("가족 영화 빼고")
	if !reflect.DeepEqual(genres, []string{"가족"}) {
		t.Errorf("unexpected genres: %v", genres)
	}
}

func TestParseExclusions_Dedupes(t *testing.T) {
	genres, _ := domain.ParseExclusions("공포 빼고 공포 제외")
	if !reflect.DeepEqual(genres, []string{"공포"}) {
		t.Errorf("unexpected genres: %v", genres)
	}
}

func TestParseExclusions_EmptyMessage(t *testing.T) {
	genres, titles := domain.ParseExclusions("")
	if len(genres) != 0 || len(titles) != 0 {
		t.Errorf("expected empty results, got %v / %v", genres, titles)
	}
}
