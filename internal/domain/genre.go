package domain

// GenreList is the closed vocabulary of genre names the service recognizes.
// Order matters: it is the order presented to the model and to clients.
var GenreList = []string{
	"드라마", "SF", "판타지", "로맨스", "뮤지컬", "애니메이션", "전쟁", "가족", "다큐멘터리",
	"스릴러", "공포", "액션", "코미디", "범죄", "모험", "미스터리", "역사", "음악", "서부",
}

var genreSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(GenreList))
	for _, g := range GenreList {
		s[g] = struct{}{}
	}
	return s
}()

// IsGenre reports whether name belongs to the closed genre vocabulary.
func IsGenre(name string) bool {
	_, ok := genreSet[name]
	return ok
}
