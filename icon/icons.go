package icon

type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Empty
	Content
	Playlist
	Like
	Lock
	Search
)

var icons = map[Icon]iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "+"},
	Fail:     {emoji: "❌", nerd: "", plain: "x"},
	Progress: {emoji: "⏳", nerd: "", plain: "~"},
	Empty:    {emoji: "🕳️", nerd: "", plain: "-"},
	Content:  {emoji: "🎧", nerd: "", plain: ">"},
	Playlist: {emoji: "📚", nerd: "", plain: "#"},
	Like:     {emoji: "👍", nerd: "", plain: "^"},
	Lock:     {emoji: "🔒", nerd: "", plain: "!"},
	Search:   {emoji: "🔎", nerd: "", plain: "?"},
}
