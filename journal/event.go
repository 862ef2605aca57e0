package journal

// Kind is the type of a journaled event.
type Kind string

const (
	KindGenesis    Kind = "genesis"
	KindRoundStart Kind = "round_start"
	KindDraw       Kind = "draw"
	KindBid        Kind = "bid"
	KindPass       Kind = "pass"
	KindAuction    Kind = "auction"
	KindRoundEnd   Kind = "round_end"
	KindGameEnd    Kind = "game_end"
)

// Event is a single entry of the journal.
type Event struct {
	Index    int               `json:"index"`
	PrevHash string            `json:"prev_hash"`
	Hash     string            `json:"hash"`
	Kind     Kind              `json:"kind"`
	Round    int               `json:"round"`
	Player   string            `json:"player,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
}
