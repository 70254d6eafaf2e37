package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestSetLocale(t *testing.T) {
	t.Cleanup(func() { SetLocale(LocaleEnglish) })

	assert.False(t, SetLocale(Locale("fr")))
	assert.Equal(t, LocaleEnglish, CurrentLocale())

	assert.True(t, SetLocale(LocaleChinese))
	assert.Equal(t, LocaleChinese, CurrentLocale())
	assert.Equal(t, language.Chinese, Tag())
	assert.Equal(t, "《三体》已加入阅读清单！", NoticeAdded("三体"))
}

func TestNoticeTemplates(t *testing.T) {
	SetLocale(LocaleEnglish)

	assert.Equal(t, `"Dune" added to your reading list!`, NoticeAdded("Dune"))
	assert.Equal(t, `"Dune" is already in your reading list!`, NoticeDuplicate("Dune"))
	assert.Equal(t, `"Dune" removed from your reading list!`, NoticeRemoved("Dune"))
}

func TestPluralHelpers(t *testing.T) {
	SetLocale(LocaleEnglish)

	assert.Equal(t, "1 book found", BooksFound(1))
	assert.Equal(t, "0 books found", BooksFound(0))
	assert.Equal(t, "3 books in your list", BooksInList(3))
	assert.Equal(t, "1 book in your list", BooksInList(1))
}

func TestAllLocalesHaveTables(t *testing.T) {
	for _, loc := range AvailableLocales() {
		strings, ok := translations[loc]
		if assert.True(t, ok, loc) {
			assert.NotEmpty(t, strings.Tabs.Home, loc)
			assert.NotEmpty(t, strings.Notice.Added, loc)
		}
	}
}
