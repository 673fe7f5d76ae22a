package game

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
)

// 排行榜限制
const (
	// MaxLeaderboardEntries 排行榜最多保留的条目数
	MaxLeaderboardEntries = 10

	// MaxNameLength 玩家名最大长度（字符数）
	MaxNameLength = 12

	// DefaultPlayerName 玩家名为空时使用的名字
	DefaultPlayerName = "anon"
)

// 存储路径常量
const (
	leaderboardObject   = "leaderboard"
	leaderboardProperty = "scores"
)

// ScoreEntry 排行榜条目
//
// 持久化格式为 JSON 数组：[{"name":"bob","wave":5,"time":42.3}, ...]，
// 排名高的在前，最多 10 条。
type ScoreEntry struct {
	Name string  `json:"name"`
	Wave int     `json:"wave"`
	Time float64 `json:"time"`
}

// PropStore 键值存储接口
//
// *gdata.Manager 满足该接口；测试中可以使用内存实现。
type PropStore interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// Leaderboard 本地排行榜
//
// 职责：
//   - 维护按 (波次 降序, 时间 降序) 排列的最多 10 条成绩
//   - 每次 AddScore 后写回存储
//
// 降级策略：
//   - store 为 nil 时仅保存在内存中
//   - 存储数据缺失、损坏或不是数组时视为空榜，不向游戏逻辑抛出错误
//   - 写入失败只记录日志，不影响游戏
type Leaderboard struct {
	store   PropStore
	entries []ScoreEntry
}

// NewLeaderboard 创建排行榜并从存储加载已有成绩
//
// 参数：
//   - store: 键值存储，可为 nil（降级模式，仅内存）
//
// 返回：
//   - *Leaderboard: 排行榜实例，加载失败时为空榜
func NewLeaderboard(store PropStore) *Leaderboard {
	lb := &Leaderboard{
		store:   store,
		entries: []ScoreEntry{},
	}

	if err := lb.Load(); err != nil {
		log.Printf("[Leaderboard] Warning: Failed to load scores: %v (starting empty)", err)
	}

	return lb
}

// Load 从存储重新加载排行榜
//
// 任何失败都会先把排行榜置为空，再返回错误供调用方记录。
// 数据不存在不算错误。
//
// 返回：
//   - error: 读取或解析失败时返回错误
func (lb *Leaderboard) Load() error {
	lb.entries = []ScoreEntry{}

	if lb.store == nil {
		return nil
	}

	if !lb.store.ObjectPropExists(leaderboardObject, leaderboardProperty) {
		return nil
	}

	data, err := lb.store.LoadObjectProp(leaderboardObject, leaderboardProperty)
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}

	entries, err := decodeEntries(data)
	if err != nil {
		return err
	}

	lb.entries = entries
	log.Printf("[Leaderboard] Loaded %d scores", len(lb.entries))
	return nil
}

// Save 把排行榜写回存储
//
// store 为 nil 时返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 序列化或写入失败时返回错误
func (lb *Leaderboard) Save() error {
	if lb.store == nil {
		return nil
	}

	data, err := json.Marshal(lb.entries)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	if err := lb.store.SaveObjectProp(leaderboardObject, leaderboardProperty, data); err != nil {
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}

	return nil
}

// AddScore 记录一条成绩
//
// 名字会去掉首尾空白，空名字使用 "anon"，超过 12 个字符截断。
// 插入后整体重新排序（波次降序，时间降序，成绩完全相同时先到者在前），
// 截断到 10 条并写回存储。写入失败只记录日志。
//
// 参数：
//   - name: 玩家名
//   - wave: 到达的波次
//   - timeSeconds: 存活时间（秒）
//
// 返回：
//   - int: 新成绩的名次（从 1 开始），未进入前 10 名时返回 0
func (lb *Leaderboard) AddScore(name string, wave int, timeSeconds float64) int {
	entry := ScoreEntry{
		Name: NormalizeName(name),
		Wave: wave,
		Time: timeSeconds,
	}

	// 稳定排序下新条目排在所有不比它差的条目之后
	index := 0
	for _, e := range lb.entries {
		if !ranksAbove(entry, e) {
			index++
		}
	}

	lb.entries = append(lb.entries, entry)
	sortEntries(lb.entries)
	if len(lb.entries) > MaxLeaderboardEntries {
		lb.entries = lb.entries[:MaxLeaderboardEntries]
	}

	if err := lb.Save(); err != nil {
		log.Printf("[Leaderboard] Warning: %v (score kept in memory)", err)
	}

	if index >= MaxLeaderboardEntries {
		log.Printf("[Leaderboard] Score %s wave=%d time=%.1fs did not place", entry.Name, wave, timeSeconds)
		return 0
	}

	log.Printf("[Leaderboard] Score %s wave=%d time=%.1fs placed #%d", entry.Name, wave, timeSeconds, index+1)
	return index + 1
}

// Qualifies 判断一条成绩能否进入排行榜
func (lb *Leaderboard) Qualifies(wave int, timeSeconds float64) bool {
	if len(lb.entries) < MaxLeaderboardEntries {
		return true
	}
	last := lb.entries[len(lb.entries)-1]
	return ranksAbove(ScoreEntry{Wave: wave, Time: timeSeconds}, last)
}

// Entries 返回当前排行榜（副本，修改不影响原数据）
func (lb *Leaderboard) Entries() []ScoreEntry {
	entries := make([]ScoreEntry, len(lb.entries))
	copy(entries, lb.entries)
	return entries
}

// Clear 清空排行榜并写回存储
func (lb *Leaderboard) Clear() error {
	lb.entries = []ScoreEntry{}
	return lb.Save()
}

// NormalizeName 规范化玩家名
//
// 去掉首尾空白；为空时返回 "anon"；按字符（rune）截断到 12 个。
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPlayerName
	}

	runes := []rune(name)
	if len(runes) > MaxNameLength {
		runes = runes[:MaxNameLength]
	}
	return string(runes)
}

// decodeEntries 解析存储中的排行榜数据
//
// 必须是 JSON 数组；解析后重新规范化名字、排序并截断，
// 防止手工修改过的数据破坏排行榜不变量。
func decodeEntries(data []byte) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []ScoreEntry{}, fmt.Errorf("failed to parse leaderboard: %w", err)
	}
	if entries == nil {
		// JSON null
		return []ScoreEntry{}, nil
	}

	for i := range entries {
		entries[i].Name = NormalizeName(entries[i].Name)
	}
	sortEntries(entries)
	if len(entries) > MaxLeaderboardEntries {
		entries = entries[:MaxLeaderboardEntries]
	}
	return entries, nil
}

// ranksAbove 判断 a 是否严格排在 b 前面
func ranksAbove(a, b ScoreEntry) bool {
	if a.Wave != b.Wave {
		return a.Wave > b.Wave
	}
	return a.Time > b.Time
}

func sortEntries(entries []ScoreEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return ranksAbove(entries[i], entries[j])
	})
}
