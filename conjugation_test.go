package katsuyou

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var suru = RawVerb{Kana: "する", Kanji: "為る", Class: Suru}

type formCase struct {
	form  string
	kana  string
	kanji string
	err   error
}

func runFormCases(t *testing.T, raw RawVerb, cases []formCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.form, func(t *testing.T) {
			f, err := ParseForm(tc.form)
			require.NoError(t, err)

			got, err := ConjugateVerb(raw, f)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kana, got.KanaString(), "kana")
			assert.Equal(t, tc.kanji, got.KanjiString(), "kanji")
		})
	}
}

func TestConjugateSuruPlain(t *testing.T) {
	runFormCases(t, suru, []formCase{
		{form: "stem", kana: "し", kanji: "為"},
		{form: "stem,negative", err: ErrNoNegativeForm},
		{form: "present", kana: "する", kanji: "為る"},
		{form: "present,negative", kana: "しない", kanji: "為ない"},
		{form: "past", kana: "した", kanji: "為た"},
		{form: "past,negative", kana: "しなかった", kanji: "為なかった"},
		{form: "te", kana: "して", kanji: "為て"},
		{form: "te,negative", kana: "しなくて", kanji: "為なくて"},
		{form: "imperative", kana: "しろ", kanji: "為ろ"},
		{form: "imperative,negative", kana: "するな", kanji: "為るな"},
		{form: "volitional", kana: "しよう", kanji: "為よう"},
		{form: "volitional,negative", kana: "しなかろう", kanji: "為なかろう"},
		{form: "ba-conditional", kana: "すれば", kanji: "為れば"},
		{form: "ba-conditional,negative", kana: "しなければ", kanji: "為なければ"},
		{form: "tara-conditional", kana: "したら", kanji: "為たら"},
		{form: "tara-conditional,negative", kana: "しなかったら", kanji: "為なかったら"},
		{form: "zu", kana: "せず", kanji: "為ず"},
		{form: "zu,negative", err: ErrNoNegativeForm},
		{form: "naide", kana: "しないで", kanji: "為ないで"},
		{form: "naide,negative", err: ErrNoNegativeForm},
		{form: "tai", kana: "したい", kanji: "為たい"},
		{form: "tai,negative", kana: "したくない", kanji: "為たくない"},
	})
}

func TestConjugateSuruPolite(t *testing.T) {
	runFormCases(t, suru, []formCase{
		{form: "stem,polite", err: ErrNoPoliteForm},
		{form: "stem,polite,negative", err: ErrNoPoliteForm},
		{form: "zu,polite", err: ErrNoPoliteForm},
		{form: "zu,polite,negative", err: ErrNoPoliteForm},
		{form: "present,polite", kana: "します", kanji: "為ます"},
		{form: "present,polite,negative", kana: "しません", kanji: "為ません"},
		{form: "past,polite", kana: "しました", kanji: "為ました"},
		{form: "past,polite,negative", kana: "しませんでした", kanji: "為ませんでした"},
		{form: "te,polite", kana: "しまして", kanji: "為まして"},
		{form: "te,polite,negative", kana: "しませんで", kanji: "為ませんで"},
		{form: "imperative,polite", kana: "しなさい", kanji: "為なさい"},
		{form: "imperative,polite,negative", err: ErrNoNegativeForm},
		{form: "volitional,polite", kana: "しましょう", kanji: "為ましょう"},
		{form: "volitional,polite,negative", err: ErrNoNegativeForm},
		{form: "ba-conditional,polite", kana: "しますれば", kanji: "為ますれば"},
		{form: "ba-conditional,polite,short", kana: "しませば", kanji: "為ませば"},
		{form: "ba-conditional,polite,negative", err: ErrNoNegativeForm},
		{form: "tara-conditional,polite", kana: "しましたら", kanji: "為ましたら"},
		{form: "tara-conditional,polite,negative", kana: "しませんでしたら", kanji: "為ませんでしたら"},
		{form: "naide,polite", kana: "しませんで", kanji: "為ませんで"},
		{form: "naide,polite,negative", err: ErrNoNegativeForm},
		{form: "tai,polite", kana: "したいです", kanji: "為たいです"},
		{form: "tai,polite,negative", kana: "したくないです", kanji: "為たくないです"},
	})
}

func TestConjugateSuruAuxiliary(t *testing.T) {
	runFormCases(t, suru, []formCase{
		{form: "potential,present", kana: "できる", kanji: "出来る"},
		{form: "potential,present,negative", kana: "できない", kanji: "出来ない"},
		{form: "passive,present", kana: "される", kanji: "為れる"},
		{form: "causative,present", kana: "させる", kanji: "為せる"},
		{form: "causative,present,short", kana: "さす", kanji: "為す"},
		{form: "causative-passive,present", kana: "させられる", kanji: "為せられる"},
		{form: "causative-passive,present,short", kana: "させられる", kanji: "為せられる"},
		{form: "tagaru,present", kana: "したがる", kanji: "為たがる"},
		{form: "tagaru,past", kana: "したがった", kanji: "為たがった"},
	})
}

func TestConjugateSuruAdditional(t *testing.T) {
	runFormCases(t, suru, []formCase{
		{form: "continuous,present", kana: "している", kanji: "為ている"},
		{form: "continuous,present,short", kana: "してる", kanji: "為てる"},
		{form: "te-aru,present", kana: "してある", kanji: "為てある"},
		{form: "te-iku,present", kana: "していく", kanji: "為ていく"},
		{form: "te-kuru,present", kana: "してくる", kanji: "為てくる"},
		{form: "te-ageru,present", kana: "してあげる", kanji: "為てあげる"},
		{form: "te-kureru,present", kana: "してくれる", kanji: "為てくれる"},
		{form: "te-morau,present", kana: "してもらう", kanji: "為てもらう"},
		{form: "te-oku,present", kana: "しておく", kanji: "為ておく"},
		{form: "te-oku,present,short", kana: "しとく", kanji: "為とく"},
		{form: "te-shimau,present", kana: "してしまう", kanji: "為てしまう"},
		{form: "te-shimau,present,short", kana: "しちゃう", kanji: "為ちゃう"},
	})
}

func TestConjugateCombined(t *testing.T) {
	runFormCases(t, suru, []formCase{
		{form: "potential,continuous,present,negative,short,polite", kana: "できてません", kanji: "出来てません"},
	})
}

func TestConjugateScenarios(t *testing.T) {
	tests := []struct {
		name  string
		raw   RawVerb
		form  Form
		kana  string
		kanji string
	}{
		{
			name: "ichidan te",
			raw:  RawVerb{Kana: "みる", Kanji: "見る", Class: Ichidan},
			form: Form{Base: Te},
			kana: "みて", kanji: "見て",
		},
		{
			name: "godan negative",
			raw:  RawVerb{Kana: "あう", Kanji: "会う", Class: Godan},
			form: Form{Base: Present, Negative: true},
			kana: "あわない", kanji: "会わない",
		},
		{
			name: "iku te",
			raw:  RawVerb{Kana: "いく", Kanji: "行く", Class: Iku},
			form: Form{Base: Te},
			kana: "いって", kanji: "行って",
		},
		{
			name: "tou past",
			raw:  RawVerb{Kana: "とう", Kanji: "問う", Class: Tou},
			form: Form{Base: Past},
			kana: "とうた", kanji: "問うた",
		},
		{
			name: "kuru negative",
			raw:  RawVerb{Kana: "くる", Kanji: "来る", Class: Kuru},
			form: Form{Base: Present, Negative: true},
			kana: "こない", kanji: "来ない",
		},
		{
			name: "kuru imperative",
			raw:  RawVerb{Kana: "くる", Kanji: "来る", Class: Kuru},
			form: Form{Base: Imperative},
			kana: "こい", kanji: "来い",
		},
		{
			name: "aru negative",
			raw:  RawVerb{Kana: "ある", Kanji: "有る", Class: Aru},
			form: Form{Base: Present, Negative: true},
			kana: "ない", kanji: "ない",
		},
		{
			name: "kureru imperative",
			raw:  RawVerb{Kana: "くれる", Kanji: "呉れる", Class: Kureru},
			form: Form{Base: Imperative},
			kana: "くれ", kanji: "呉れ",
		},
		{
			name: "keigo polite",
			raw:  RawVerb{Kana: "いらっしゃる", Class: Irassharu},
			form: Form{Base: Present, Polite: true},
			kana: "いらっしゃいます",
		},
		{
			name: "suru compound potential",
			raw:  RawVerb{Kana: "べんきょうする", Kanji: "勉強する", Class: Suru},
			form: Form{Base: Present, Auxiliary: Potential},
			kana: "べんきょうできる", kanji: "勉強できる",
		},
		{
			name: "godan short potential",
			raw:  RawVerb{Kana: "かく", Kanji: "書く", Class: Godan},
			form: Form{Base: Present, Auxiliary: Potential, Short: true},
			kana: "かける", kanji: "書ける",
		},
		{
			name: "ichidan short potential",
			raw:  RawVerb{Kana: "たべる", Kanji: "食べる", Class: Ichidan},
			form: Form{Base: Present, Auxiliary: Potential, Short: true},
			kana: "たべれる", kanji: "食べれる",
		},
		{
			name: "iku passive follows godan",
			raw:  RawVerb{Kana: "いく", Kanji: "行く", Class: Iku},
			form: Form{Base: Present, Auxiliary: Passive},
			kana: "いかれる", kanji: "行かれる",
		},
		{
			name: "kuru passive",
			raw:  RawVerb{Kana: "くる", Kanji: "来る", Class: Kuru},
			form: Form{Base: Present, Auxiliary: Passive},
			kana: "こられる", kanji: "来られる",
		},
		{
			name: "godan short causative passive",
			raw:  RawVerb{Kana: "かく", Kanji: "書く", Class: Godan},
			form: Form{Base: Present, Auxiliary: CausativePassive, Short: true},
			kana: "かかされる", kanji: "書かされる",
		},
		{
			name: "su verb keeps long causative passive",
			raw:  RawVerb{Kana: "はなす", Kanji: "話す", Class: Godan},
			form: Form{Base: Present, Auxiliary: CausativePassive, Short: true},
			kana: "はなさせられる", kanji: "話させられる",
		},
		{
			name: "voiced te-shimau short",
			raw:  RawVerb{Kana: "のむ", Kanji: "飲む", Class: Godan},
			form: Form{Base: Past, Additional: TeShimau, Short: true},
			kana: "のんじゃった", kanji: "飲んじゃった",
		},
		{
			name: "voiced te-oku short",
			raw:  RawVerb{Kana: "しぬ", Kanji: "死ぬ", Class: Godan},
			form: Form{Base: Present, Additional: TeOku, Short: true},
			kana: "しんどく", kanji: "死んどく",
		},
		{
			name: "te-iku past uses iku te-form",
			raw:  RawVerb{Kana: "たべる", Kanji: "食べる", Class: Ichidan},
			form: Form{Base: Past, Additional: TeIku},
			kana: "たべていった", kanji: "食べていった",
		},
		{
			name: "te-kuru negative uses kuru stem",
			raw:  RawVerb{Kana: "たべる", Kanji: "食べる", Class: Ichidan},
			form: Form{Base: Present, Additional: TeKuru, Negative: true},
			kana: "たべてこない", kanji: "食べてこない",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConjugateVerb(tt.raw, tt.form)
			require.NoError(t, err)
			assert.Equal(t, tt.kana, got.KanaString())
			if tt.kanji == "" {
				assert.Nil(t, got.Kanji)
			} else {
				assert.Equal(t, tt.kanji, got.KanjiString())
			}
		})
	}
}

func TestGodanTeForms(t *testing.T) {
	tests := []struct {
		kana string
		te   string
		ta   string
	}{
		{"あう", "あって", "あった"},
		{"かく", "かいて", "かいた"},
		{"およぐ", "およいで", "およいだ"},
		{"はなす", "はなして", "はなした"},
		{"まつ", "まって", "まった"},
		{"しぬ", "しんで", "しんだ"},
		{"あそぶ", "あそんで", "あそんだ"},
		{"のむ", "のんで", "のんだ"},
		{"かえる", "かえって", "かえった"},
	}
	for _, tt := range tests {
		t.Run(tt.kana, func(t *testing.T) {
			raw := RawVerb{Kana: tt.kana, Class: Godan}
			te, err := ConjugateVerb(raw, Form{Base: Te})
			require.NoError(t, err)
			assert.Equal(t, tt.te, te.KanaString())

			ta, err := ConjugateVerb(raw, Form{Base: Past})
			require.NoError(t, err)
			assert.Equal(t, tt.ta, ta.KanaString())
			assert.Nil(t, ta.Kanji)
		})
	}
}

func TestConjugateChannelIndependence(t *testing.T) {
	kanaOnly, err := ConjugateVerb(RawVerb{Kana: "たべる", Class: Ichidan}, Form{Base: Present, Additional: Continuous})
	require.NoError(t, err)
	assert.Equal(t, "たべている", kanaOnly.KanaString())
	assert.Nil(t, kanaOnly.Kanji)

	kanjiOnly, err := ConjugateVerb(RawVerb{Kanji: "食べる", Class: Ichidan}, Form{Base: Present, Additional: Continuous, Short: true})
	require.NoError(t, err)
	assert.Nil(t, kanjiOnly.Kana)
	assert.Equal(t, "食べてる", kanjiOnly.KanjiString())

	// Overrides never create a missing channel.
	kanaSuru, err := ConjugateVerb(RawVerb{Kana: "する", Class: Suru}, Form{Base: Present, Auxiliary: Potential})
	require.NoError(t, err)
	assert.Equal(t, "できる", kanaSuru.KanaString())
	assert.Nil(t, kanaSuru.Kanji)
}

func TestConjugateUnknownKinds(t *testing.T) {
	v, err := Process(RawVerb{Kana: "たべる", Class: Ichidan})
	require.NoError(t, err)

	_, err = Conjugate(v, Form{Base: BaseForm(99)})
	assert.ErrorIs(t, err, ErrUnknownForm)
	_, err = Conjugate(v, Form{Base: Present, Auxiliary: AuxiliaryForm(99)})
	assert.ErrorIs(t, err, ErrUnknownAuxForm)
	_, err = Conjugate(v, Form{Base: Present, Additional: AdditionalForm(99)})
	assert.ErrorIs(t, err, ErrUnknownAdditionalForm)
	_, err = Conjugate(v, Form{Base: BaseForm(99), Polite: true})
	assert.ErrorIs(t, err, ErrUnknownForm)
	_, err = negativeForm(v, NegativeForm(99))
	assert.ErrorIs(t, err, ErrUnknownNegativeForm)
}

func TestNegativeTotality(t *testing.T) {
	for _, class := range []VerbClass{Ichidan, Godan, Suru, Kuru} {
		raw := RawVerb{Kana: "たべる", Class: class}
		switch class {
		case Godan:
			raw.Kana = "かく"
		case Suru:
			raw.Kana = "する"
		case Kuru:
			raw.Kana = "くる"
		}
		for _, b := range []BaseForm{Stem, Zu, Naide} {
			_, err := ConjugateVerb(raw, Form{Base: b, Negative: true})
			assert.ErrorIs(t, err, ErrNoNegativeForm, "%s %s", class, b)
		}
	}
}

func TestConjugateVerbs(t *testing.T) {
	forms := []Form{
		{Base: Present},
		{Base: Stem, Negative: true},
		{Base: Past, Polite: true},
	}
	out, err := ConjugateVerbs(RawVerb{Kana: "のむ", Kanji: "飲む", Class: Godan}, forms)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.NoError(t, out[0].Err)
	assert.Equal(t, "飲む (のむ)", out[0].Result.String())
	assert.ErrorIs(t, out[1].Err, ErrNoNegativeForm)
	assert.Equal(t, forms[1], out[1].Form)
	assert.Equal(t, "のみました", out[2].Result.KanaString())

	_, err = ConjugateVerbs(RawVerb{Class: Godan}, forms)
	assert.ErrorIs(t, err, ErrNoKanaOrKanji)
}

func TestConjugateRegularVerbs(t *testing.T) {
	kaku := RawVerb{Kana: "かく", Kanji: "書く", Class: Godan}
	taberu := RawVerb{Kana: "たべる", Kanji: "食べる", Class: Ichidan}
	kuru := RawVerb{Kana: "くる", Kanji: "来る", Class: Kuru}

	tests := []struct {
		name  string
		raw   RawVerb
		form  string
		kana  string
		kanji string
	}{
		{"aru zu", RawVerb{Kana: "ある", Kanji: "有る", Class: Aru}, "zu", "あらず", "有らず"},
		{"kuru zu", kuru, "zu", "こず", "来ず"},
		{"kuru volitional", kuru, "volitional", "こよう", "来よう"},
		{"godan volitional", kaku, "volitional", "かこう", "書こう"},
		{"godan imperative", kaku, "imperative", "かけ", "書け"},
		{"keigo imperative", RawVerb{Kana: "いらっしゃる", Class: Irassharu}, "imperative", "いらっしゃれ", ""},
		{"godan ba-conditional", kaku, "ba-conditional", "かけば", "書けば"},
		{"godan passive", kaku, "passive,present", "かかれる", "書かれる"},
		{"godan causative", kaku, "causative,present", "かかせる", "書かせる"},
		{"godan short causative", kaku, "causative,present,short", "かかす", "書かす"},
		{"godan causative past", kaku, "causative,past", "かかせた", "書かせた"},
		{"godan continuous", kaku, "continuous,present", "かいている", "書いている"},
		{"godan te-morau polite", kaku, "te-morau,present,polite", "かいてもらいます", "書いてもらいます"},
		{"ichidan passive", taberu, "passive,present", "たべられる", "食べられる"},
		{"ichidan causative", taberu, "causative,present", "たべさせる", "食べさせる"},
		{"ichidan potential negative", taberu, "potential,present,negative", "たべられない", "食べられない"},
		{"ichidan te-aru negative", taberu, "te-aru,present,negative", "たべてない", "食べてない"},
		{"ichidan te-shimau", taberu, "te-shimau,past", "たべてしまった", "食べてしまった"},
		{"kuru short potential", kuru, "potential,present,short", "これる", "来れる"},
		{"iku short te-shimau past", RawVerb{Kana: "いく", Kanji: "行く", Class: Iku}, "te-shimau,past,short", "いっちゃった", "行っちゃった"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseForm(tt.form)
			require.NoError(t, err)

			got, err := ConjugateVerb(tt.raw, f)
			require.NoError(t, err)
			assert.Equal(t, tt.kana, got.KanaString())
			if tt.kanji == "" {
				assert.Nil(t, got.Kanji)
			} else {
				assert.Equal(t, tt.kanji, got.KanjiString())
			}
		})
	}
}

func TestConjugateStepCarriesLayerStem(t *testing.T) {
	v, err := Process(RawVerb{Kana: "たべる", Class: Ichidan})
	require.NoError(t, err)

	step, err := Conjugate(v, Form{Base: Present, Auxiliary: Passive})
	require.NoError(t, err)
	assert.Equal(t, "る", step.Suffix)
	require.NotNil(t, step.KanaStem)
	assert.Equal(t, "たべられ", *step.KanaStem)
	assert.Nil(t, step.KanjiStem)

	plain, err := Conjugate(v, Form{Base: Present})
	require.NoError(t, err)
	assert.Nil(t, plain.KanaStem)
}
