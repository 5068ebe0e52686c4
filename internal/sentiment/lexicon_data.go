package sentiment

type lexiconEntry struct {
	Polarity     float64
	Subjectivity float64
}

// lexicon maps lower-cased tokens to polarity/subjectivity pairs in the
// TextBlob convention: polarity in [-1,1], subjectivity in [0,1].
var lexicon = map[string]lexiconEntry{
	// positive
	"good":          {0.7, 0.6},
	"great":         {0.8, 0.75},
	"best":          {1.0, 0.3},
	"better":        {0.5, 0.5},
	"excellent":     {1.0, 1.0},
	"amazing":       {0.6, 0.9},
	"awesome":       {1.0, 1.0},
	"love":          {0.5, 0.6},
	"loved":         {0.7, 0.8},
	"like":          {0.2, 0.3},
	"happy":         {0.8, 1.0},
	"glad":          {0.5, 1.0},
	"nice":          {0.6, 1.0},
	"wonderful":     {1.0, 1.0},
	"fantastic":     {0.4, 0.9},
	"perfect":       {1.0, 1.0},
	"impressive":    {1.0, 1.0},
	"impressed":     {1.0, 1.0},
	"incredible":    {0.9, 0.9},
	"beautiful":     {0.85, 1.0},
	"brilliant":     {0.9, 0.9},
	"outstanding":   {0.8, 0.9},
	"superb":        {0.9, 0.9},
	"delighted":     {0.85, 1.0},
	"recommend":     {0.4, 0.5},
	"recommended":   {0.4, 0.5},
	"reliable":      {0.6, 0.6},
	"satisfied":     {0.5, 0.7},
	"satisfaction":  {0.5, 0.7},
	"win":           {0.6, 0.6},
	"winner":        {0.7, 0.7},
	"success":       {0.7, 0.6},
	"successful":    {0.7, 0.6},
	"innovation":    {0.4, 0.4},
	"innovative":    {0.5, 0.5},
	"revolutionary": {0.5, 0.7},
	"promising":     {0.5, 0.6},
	"growth":        {0.3, 0.3},
	"improved":      {0.5, 0.5},
	"improvement":   {0.4, 0.4},
	"quality":       {0.3, 0.4},
	"enjoy":         {0.5, 0.6},
	"enjoyed":       {0.5, 0.6},
	"fast":          {0.2, 0.4},
	"smooth":        {0.4, 0.5},
	"helpful":       {0.5, 0.5},
	"friendly":      {0.5, 0.6},
	"easy":          {0.4, 0.7},
	"fun":           {0.3, 0.4},
	"solid":         {0.3, 0.4},
	"strong":        {0.4, 0.4},
	"gain":          {0.3, 0.3},
	"positive":      {0.35, 0.55},
	"thrilled":      {0.8, 0.9},
	"excited":       {0.6, 0.8},
	"exciting":      {0.55, 0.8},

	// neutral-ish (exact band edges live here on purpose)
	"okay":        {0.1, 0.4},
	"ok":          {0.1, 0.4},
	"fine":        {0.2, 0.6},
	"meh":         {-0.1, 0.5},
	"average":     {0.0, 0.4},
	"mixed":       {0.0, 0.5},
	"mediocre":    {0.0, 0.6},
	"acceptable":  {0.1, 0.5},
	"interesting": {0.25, 0.5},

	// negative
	"bad":            {-0.7, 0.65},
	"worse":          {-0.5, 0.6},
	"worst":          {-1.0, 1.0},
	"terrible":       {-1.0, 1.0},
	"awful":          {-1.0, 1.0},
	"horrible":       {-1.0, 1.0},
	"hate":           {-0.8, 0.9},
	"hated":          {-0.9, 0.9},
	"disappointed":   {-0.75, 0.75},
	"disappointing":  {-0.6, 0.7},
	"disappointment": {-0.6, 0.7},
	"poor":           {-0.4, 0.6},
	"sad":            {-0.5, 1.0},
	"angry":          {-0.5, 0.9},
	"annoying":       {-0.6, 0.8},
	"annoyed":        {-0.6, 0.8},
	"broken":         {-0.4, 0.5},
	"useless":        {-0.5, 0.6},
	"slow":           {-0.3, 0.4},
	"expensive":      {-0.3, 0.5},
	"overpriced":     {-0.5, 0.6},
	"overvalued":     {-0.4, 0.5},
	"failure":        {-0.7, 0.6},
	"failed":         {-0.6, 0.5},
	"fail":           {-0.5, 0.5},
	"problem":        {-0.3, 0.4},
	"problems":       {-0.3, 0.4},
	"issue":          {-0.2, 0.3},
	"issues":         {-0.2, 0.3},
	"bug":            {-0.3, 0.4},
	"buggy":          {-0.5, 0.6},
	"crash":          {-0.5, 0.5},
	"scam":           {-0.8, 0.8},
	"fraud":          {-0.8, 0.7},
	"lawsuit":        {-0.4, 0.4},
	"recall":         {-0.4, 0.4},
	"decline":        {-0.4, 0.4},
	"loss":           {-0.4, 0.4},
	"ugly":           {-0.7, 1.0},
	"boring":         {-0.6, 0.8},
	"waste":          {-0.6, 0.6},
	"wrong":          {-0.5, 0.5},
	"negative":       {-0.35, 0.55},
	"unhappy":        {-0.6, 0.8},
	"frustrated":     {-0.6, 0.8},
	"frustrating":    {-0.6, 0.8},
	"regret":         {-0.5, 0.7},
	"refund":         {-0.2, 0.3},
	"complaint":      {-0.4, 0.5},
	"complaints":     {-0.4, 0.5},
}

// intensifiers scale the polarity of the next lexicon word.
var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"absolutely": 1.4,
	"totally":    1.3,
	"completely": 1.35,
	"extremely":  1.4,
	"incredibly": 1.4,
	"highly":     1.25,
	"so":         1.2,
	"quite":      1.1,
	"truly":      1.3,
	"super":      1.3,
	"somewhat":   0.7,
	"slightly":   0.5,
	"barely":     0.5,
	"kinda":      0.7,
	"fairly":     0.85,
}

var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"none":    true,
	"neither": true,
	"nor":     true,
	"cannot":  true,
	"without": true,
	"hardly":  true,
}
