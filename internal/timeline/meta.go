package timeline

// Resource is one entry in a named-vocabulary table: an animation, transition,
// font, or filter that the editor ships with.
type Resource struct {
	Name       string `json:"name"`
	ResourceID string `json:"resource_id"`
}

// Vocabulary is a fixed table of named resources with lookup by exact name.
type Vocabulary struct {
	entries []Resource
	index   map[string]Resource
}

func newVocabulary(entries []Resource) *Vocabulary {
	index := make(map[string]Resource, len(entries))
	for _, e := range entries {
		index[e.Name] = e
	}
	return &Vocabulary{entries: entries, index: index}
}

// Names returns the entry names in table order.
func (v *Vocabulary) Names() []string {
	names := make([]string, len(v.entries))
	for i, e := range v.entries {
		names[i] = e.Name
	}
	return names
}

// Find returns the resource registered under name. The second return is
// false if the name is unknown.
func (v *Vocabulary) Find(name string) (Resource, bool) {
	r, ok := v.index[name]
	return r, ok
}

// Len returns the number of entries in the table.
func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// Static vocabularies the editor ships with. Resource ids are the asset
// store identifiers the draft file references.
var (
	Fonts = newVocabulary([]Resource{
		{Name: "SourceHanSans", ResourceID: "6740395391546937869"},
		{Name: "SourceHanSerif", ResourceID: "6740395391550074381"},
		{Name: "HYXuanSong", ResourceID: "6740395391553219085"},
		{Name: "DianHei", ResourceID: "6740395391556364813"},
		{Name: "YunHei", ResourceID: "6740395391559510541"},
		{Name: "WenYi", ResourceID: "6740395391562656269"},
		{Name: "HanYiLingXin", ResourceID: "6740395391565801997"},
		{Name: "JinLongSong", ResourceID: "6740395391568947725"},
	})

	IntroAnimations = newVocabulary([]Resource{
		{Name: "FadeIn", ResourceID: "6798320778182938119"},
		{Name: "ZoomIn", ResourceID: "6798320778186083847"},
		{Name: "ZoomOut", ResourceID: "6798320778189229575"},
		{Name: "SlideLeft", ResourceID: "6798320778192375303"},
		{Name: "SlideRight", ResourceID: "6798320778195521031"},
		{Name: "SlideUp", ResourceID: "6798320778198666759"},
		{Name: "SlideDown", ResourceID: "6798320778201812487"},
		{Name: "Spin", ResourceID: "6798320778204958215"},
		{Name: "Shake", ResourceID: "6798320778208103943"},
	})

	OutroAnimations = newVocabulary([]Resource{
		{Name: "FadeOut", ResourceID: "6798320778211249671"},
		{Name: "ZoomOutSlow", ResourceID: "6798320778214395399"},
		{Name: "SlideLeftOut", ResourceID: "6798320778217541127"},
		{Name: "SlideRightOut", ResourceID: "6798320778220686855"},
		{Name: "SpinOut", ResourceID: "6798320778223832583"},
		{Name: "ShrinkOut", ResourceID: "6798320778226978311"},
	})

	TextIntroAnimations = newVocabulary([]Resource{
		{Name: "Typewriter", ResourceID: "6779235996484359694"},
		{Name: "FadeInText", ResourceID: "6779235996487505422"},
		{Name: "FlyInLeft", ResourceID: "6779235996490651150"},
		{Name: "FlyInRight", ResourceID: "6779235996493796878"},
		{Name: "BounceIn", ResourceID: "6779235996496942606"},
		{Name: "WipeIn", ResourceID: "6779235996500088334"},
	})

	TextOutroAnimations = newVocabulary([]Resource{
		{Name: "FadeOutText", ResourceID: "6779235996503234062"},
		{Name: "FlyOutLeft", ResourceID: "6779235996506379790"},
		{Name: "FlyOutRight", ResourceID: "6779235996509525518"},
		{Name: "BounceOut", ResourceID: "6779235996512671246"},
		{Name: "WipeOut", ResourceID: "6779235996515816974"},
	})

	Transitions = newVocabulary([]Resource{
		{Name: "Dissolve", ResourceID: "6724239388189921806"},
		{Name: "WipeLeft", ResourceID: "6724239388193067534"},
		{Name: "WipeRight", ResourceID: "6724239388196213262"},
		{Name: "PushUp", ResourceID: "6724239388199358990"},
		{Name: "PushDown", ResourceID: "6724239388202504718"},
		{Name: "Blinds", ResourceID: "6724239388205650446"},
		{Name: "Blur", ResourceID: "6724239388208796174"},
		{Name: "Mosaic", ResourceID: "6724239388211941902"},
	})

	Filters = newVocabulary([]Resource{
		{Name: "Natural", ResourceID: "6706773500979714573"},
		{Name: "Fresh", ResourceID: "6706773500982860301"},
		{Name: "Retro", ResourceID: "6706773500986006029"},
		{Name: "BlackWhite", ResourceID: "6706773500989151757"},
		{Name: "Film", ResourceID: "6706773500992297485"},
		{Name: "Warm", ResourceID: "6706773500995443213"},
		{Name: "Cool", ResourceID: "6706773500998588941"},
	})
)
