package domain

import "fmt"

// Level representa o nível de hierarquia de uma entidade de anúncio no Meta
type Level string

const (
	LevelCampaign Level = "campaign"
	LevelAdset    Level = "adset"
	LevelAd       Level = "ad"
)

// Levels retorna todos os níveis na ordem de coleta
func Levels() []Level {
	return []Level{LevelCampaign, LevelAdset, LevelAd}
}

// ParseLevel valida e converte o parâmetro de nível recebido pela API
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelCampaign, LevelAdset, LevelAd:
		return Level(s), nil
	}
	return "", fmt.Errorf("nível inválido %q: valores aceitos são campaign, adset ou ad", s)
}
