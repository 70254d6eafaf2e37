package lang

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleChinese Locale = "zh"
)

type TabsStrings struct {
	Home       string
	Browse     string
	Categories string
	Reviews    string
}

type HeroStrings struct {
	Headline       string
	HeadlineAccent string
	Tagline        string
	StartExploring string
}

type PageStrings struct {
	Featured            string
	AllBooks            string
	BrowseAll           string
	SearchResultsFor    string
	FoundSingular       string
	FoundPlural         string
	NoResults           string
	NoResultsHint       string
	EmptyCatalog        string
	CategoriesTitle     string
	CategoryCount       string
	TopRated            string
	ReadingListButton   string
	SearchPlaceholder   string
	SearchPrompt        string
	FiltersLabel        string
	AllGenres           string
	SortLabelTemplate   string
	SortRating          string
	SortTitle           string
	SortAuthor          string
	SortYear            string
	SortReviews         string
	CategoriesSingular  string
	CategoriesPlural    string
	CategoryFilterLabel string
}

type DetailStrings struct {
	Title         string
	ByTemplate    string
	ReviewsCount  string
	Description   string
	Published     string
	Pages         string
	Language      string
	ISBN          string
	Featured      string
	AddToList     string
	AlreadyInList string
}

type ListStrings struct {
	Title        string
	Empty        string
	EmptyHint    string
	CountSingle  string
	CountPlural  string
	Export       string
	ExportHeader string
}

type NoticeStrings struct {
	Added        string
	Duplicate    string
	Removed      string
	Exported     string
	ExportFailed string
	ExportEmpty  string
}

type ProfileStrings struct {
	Title          string
	MemberSince    string
	Edit           string
	Save           string
	Cancel         string
	BooksRead      string
	ReadingList    string
	Reviews        string
	About          string
	FavoriteGenres string
	GoalTitle      string
	GoalProgress   string
	GoalRemaining  string
	NameLabel      string
	EmailLabel     string
	BioLabel       string
	InvalidName    string
	InvalidEmail   string
}

type CommonStrings struct {
	UnknownItem string
}

type LayoutStrings struct {
	UnderlineLength int
}

type Strings struct {
	Tabs    TabsStrings
	Hero    HeroStrings
	Page    PageStrings
	Detail  DetailStrings
	List    ListStrings
	Notice  NoticeStrings
	Profile ProfileStrings
	Common  CommonStrings
	Layout  LayoutStrings
}

var (
	mu sync.RWMutex

	translations = map[Locale]*Strings{
		LocaleEnglish: {
			Tabs: TabsStrings{
				Home:       "Home",
				Browse:     "Browse",
				Categories: "Categories",
				Reviews:    "Reviews",
			},
			Hero: HeroStrings{
				Headline:       "Discover Your Next",
				HeadlineAccent: "Great Read",
				Tagline:        "Explore our collection of books and keep a list of what to read next.",
				StartExploring: "Start Exploring",
			},
			Page: PageStrings{
				Featured:            "Featured Books",
				AllBooks:            "All Books",
				BrowseAll:           "Browse All Books",
				SearchResultsFor:    "Search Results for \"%s\"",
				FoundSingular:       "%d book found",
				FoundPlural:         "%d books found",
				NoResults:           "No books found matching your criteria",
				NoResultsHint:       "Try adjusting your search or filters",
				EmptyCatalog:        "The catalog has no books yet",
				CategoriesTitle:     "Browse by Categories",
				CategoryCount:       "%d books available",
				TopRated:            "Top Rated Books",
				ReadingListButton:   "Reading List (%d)",
				SearchPlaceholder:   "Search books, authors, genres...",
				SearchPrompt:        "Search: ",
				FiltersLabel:        "Filters:",
				AllGenres:           "All Genres",
				SortLabelTemplate:   "Sort by %s",
				SortRating:          "Rating",
				SortTitle:           "Title",
				SortAuthor:          "Author",
				SortYear:            "Year",
				SortReviews:         "Reviews",
				CategoriesSingular:  "genre",
				CategoriesPlural:    "genres",
				CategoryFilterLabel: "Genre",
			},
			Detail: DetailStrings{
				Title:         "Book Details",
				ByTemplate:    "by %s",
				ReviewsCount:  "(%d reviews)",
				Description:   "Description",
				Published:     "Published: %d",
				Pages:         "%d pages",
				Language:      "Language: %s",
				ISBN:          "ISBN: %s",
				Featured:      "Featured",
				AddToList:     "Add to Reading List",
				AlreadyInList: "✓ Added to Reading List",
			},
			List: ListStrings{
				Title:        "My Reading List",
				Empty:        "Your reading list is empty",
				EmptyHint:    "Add books to start building your collection",
				CountSingle:  "%d book in your list",
				CountPlural:  "%d books in your list",
				Export:       "Export List",
				ExportHeader: "My Reading List",
			},
			Notice: NoticeStrings{
				Added:        "\"%s\" added to your reading list!",
				Duplicate:    "\"%s\" is already in your reading list!",
				Removed:      "\"%s\" removed from your reading list!",
				Exported:     "Reading list copied to clipboard (%d books)",
				ExportFailed: "Could not copy reading list: %v",
				ExportEmpty:  "Your reading list is empty",
			},
			Profile: ProfileStrings{
				Title:          "Profile",
				MemberSince:    "Member since %s",
				Edit:           "Edit Profile",
				Save:           "Save Changes",
				Cancel:         "Cancel",
				BooksRead:      "Books Read",
				ReadingList:    "Reading List",
				Reviews:        "Reviews",
				About:          "About",
				FavoriteGenres: "Favorite Genres",
				GoalTitle:      "Reading Goal",
				GoalProgress:   "%d/%d books",
				GoalRemaining:  "%d books to go!",
				NameLabel:      "Name",
				EmailLabel:     "Email",
				BioLabel:       "Bio",
				InvalidName:    "Name cannot be empty",
				InvalidEmail:   "Email address is not valid",
			},
			Common: CommonStrings{
				UnknownItem: "Unknown item",
			},
			Layout: LayoutStrings{
				UnderlineLength: 60,
			},
		},
		LocaleChinese: {
			Tabs: TabsStrings{
				Home:       "首页",
				Browse:     "浏览",
				Categories: "分类",
				Reviews:    "评分",
			},
			Hero: HeroStrings{
				Headline:       "发现你的下一本",
				HeadlineAccent: "好书",
				Tagline:        "浏览我们的藏书，并记录接下来想读的书。",
				StartExploring: "开始探索",
			},
			Page: PageStrings{
				Featured:            "精选书籍",
				AllBooks:            "全部书籍",
				BrowseAll:           "浏览全部书籍",
				SearchResultsFor:    "「%s」的搜索结果",
				FoundSingular:       "找到%d本书",
				FoundPlural:         "找到%d本书",
				NoResults:           "没有符合条件的书籍",
				NoResultsHint:       "请尝试调整搜索或筛选条件",
				EmptyCatalog:        "目录中还没有书籍",
				CategoriesTitle:     "按分类浏览",
				CategoryCount:       "共%d本",
				TopRated:            "高分书籍",
				ReadingListButton:   "阅读清单 (%d)",
				SearchPlaceholder:   "搜索书名、作者、类型..",
				SearchPrompt:        "搜索：",
				FiltersLabel:        "筛选：",
				AllGenres:           "全部类型",
				SortLabelTemplate:   "按%s排序",
				SortRating:          "评分",
				SortTitle:           "书名",
				SortAuthor:          "作者",
				SortYear:            "年份",
				SortReviews:         "评论数",
				CategoriesSingular:  "类",
				CategoriesPlural:    "类",
				CategoryFilterLabel: "类型",
			},
			Detail: DetailStrings{
				Title:         "书籍详情",
				ByTemplate:    "作者：%s",
				ReviewsCount:  "(%d条评论)",
				Description:   "简介",
				Published:     "出版：%d",
				Pages:         "%d页",
				Language:      "语言：%s",
				ISBN:          "ISBN：%s",
				Featured:      "精选",
				AddToList:     "加入阅读清单",
				AlreadyInList: "✓ 已在阅读清单中",
			},
			List: ListStrings{
				Title:        "我的阅读清单",
				Empty:        "阅读清单为空",
				EmptyHint:    "添加书籍开始建立你的清单",
				CountSingle:  "清单中有%d本书",
				CountPlural:  "清单中有%d本书",
				Export:       "导出清单",
				ExportHeader: "我的阅读清单",
			},
			Notice: NoticeStrings{
				Added:        "《%s》已加入阅读清单！",
				Duplicate:    "《%s》已经在阅读清单中！",
				Removed:      "《%s》已从阅读清单移除！",
				Exported:     "阅读清单已复制到剪贴板（%d本）",
				ExportFailed: "无法复制阅读清单: %v",
				ExportEmpty:  "阅读清单为空",
			},
			Profile: ProfileStrings{
				Title:          "个人资料",
				MemberSince:    "加入于 %s",
				Edit:           "编辑资料",
				Save:           "保存",
				Cancel:         "取消",
				BooksRead:      "已读",
				ReadingList:    "阅读清单",
				Reviews:        "书评",
				About:          "简介",
				FavoriteGenres: "喜爱的类型",
				GoalTitle:      "阅读目标",
				GoalProgress:   "%d/%d本",
				GoalRemaining:  "还差%d本！",
				NameLabel:      "姓名",
				EmailLabel:     "邮箱",
				BioLabel:       "简介",
				InvalidName:    "姓名不能为空",
				InvalidEmail:   "邮箱地址无效",
			},
			Common: CommonStrings{
				UnknownItem: "未知项目",
			},
			Layout: LayoutStrings{
				UnderlineLength: 48,
			},
		},
	}

	availableLocales = []Locale{
		LocaleEnglish,
		LocaleChinese,
	}

	currentLocale = LocaleEnglish
	current       = translations[currentLocale]
)

func AvailableLocales() []Locale {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Locale, len(availableLocales))
	copy(out, availableLocales)
	return out
}

func SetLocale(loc Locale) bool {
	mu.Lock()
	defer mu.Unlock()
	strings, ok := translations[loc]
	if !ok {
		return false
	}
	currentLocale = loc
	current = strings
	return true
}

func CurrentLocale() Locale {
	mu.RLock()
	defer mu.RUnlock()
	return currentLocale
}

func Active() *Strings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Tag is the language tag used for collation of the active locale.
func Tag() language.Tag {
	switch CurrentLocale() {
	case LocaleChinese:
		return language.Chinese
	default:
		return language.English
	}
}

func NoticeAdded(title string) string {
	return fmt.Sprintf(Active().Notice.Added, title)
}

func NoticeDuplicate(title string) string {
	return fmt.Sprintf(Active().Notice.Duplicate, title)
}

func NoticeRemoved(title string) string {
	return fmt.Sprintf(Active().Notice.Removed, title)
}

func NoticeExported(count int) string {
	return fmt.Sprintf(Active().Notice.Exported, count)
}

func NoticeExportFailed(err error) string {
	return fmt.Sprintf(Active().Notice.ExportFailed, err)
}

func BooksFound(count int) string {
	s := Active()
	if count == 1 {
		return fmt.Sprintf(s.Page.FoundSingular, count)
	}
	return fmt.Sprintf(s.Page.FoundPlural, count)
}

func BooksInList(count int) string {
	s := Active()
	if count == 1 {
		return fmt.Sprintf(s.List.CountSingle, count)
	}
	return fmt.Sprintf(s.List.CountPlural, count)
}

func SearchResultsFor(query string) string {
	return fmt.Sprintf(Active().Page.SearchResultsFor, query)
}

func SortLabel(name string) string {
	return fmt.Sprintf(Active().Page.SortLabelTemplate, name)
}
